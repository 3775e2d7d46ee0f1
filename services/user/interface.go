package user

import (
	userRepo "lumiere/database/repository/user"
	"lumiere/models"
)

// UserService groups account, session and device-token operations.
type UserService interface {
	// Registration / authentication
	Register(req RegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeAuthToken(userID string) error

	// Account management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error)
	UpdatePassword(userID, currentPassword, newPassword string) error
	DeleteUser(userID string) error

	// Push token management
	SubscribeToken(userID, token string) error
	UnsubscribeToken(userID, token string) error

	// Admin / ops
	GetAllUsers() ([]models.User, error)
	GrantAdmin(email, bootstrapKey string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegistrationRequest carries the self-service registration payload.
// Note there is no isAdmin field here: admin rights are only granted through
// the separately-keyed GrantAdmin path.
type RegistrationRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber"`
}

// ProfileUpdateRequest carries the fields a user may change on their own document.
type ProfileUpdateRequest struct {
	Name        string          `json:"name"`
	PhoneNumber string          `json:"phoneNumber"`
	Address     *models.Address `json:"address"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID      string `json:"id"`
	Token   string `json:"token"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}
