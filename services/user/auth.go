package user

import (
	"fmt"
	"time"

	"lumiere/models"
	"lumiere/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionTokenTTL = 72 * time.Hour

// Register creates a new customer account and signs it in.
// isAdmin is always false here; see GrantAdmin.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmailWithProjection(req.Email, bson.M{"id": 1})
	if err != nil {
		logger.Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, DuplicateEmailError{Email: req.Email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		PhoneNumber:  req.PhoneNumber,
		IsAdmin:      false,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(usr)
}

// Authenticate verifies credentials and issues a fresh session token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmailWithProjection(email, nil)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if usr == nil {
		return nil, AuthError{Reason: "unknown email"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, AuthError{Reason: "invalid credentials"}
	}

	return s.issueToken(usr)
}

// issueToken signs a JWT, stores its hash on the user document and builds the
// auth response. Storing only the hash lets a stolen database dump not
// contain usable session tokens.
func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	utils.InvalidateAuthSession(usr.TokenHash)
	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{
		"tokenHash": utils.HashToken(token),
		"updatedAt": time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &AuthResponse{
		ID:      usr.ID,
		Token:   token,
		Name:    usr.Name,
		Email:   usr.Email,
		IsAdmin: usr.IsAdmin,
	}, nil
}

// RevokeAuthToken clears the stored token hash, signing the user out everywhere.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1, "tokenHash": 1})
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr != nil {
		utils.InvalidateAuthSession(usr.TokenHash)
	}
	return s.Repo.UpdateSetDocument(userID, bson.M{
		"tokenHash": "",
		"updatedAt": time.Now(),
	})
}

// UpdatePassword re-authenticates with the current password before accepting
// the new one, then revokes the active session token.
func (s *DefaultUserService) UpdatePassword(userID, currentPassword, newPassword string) error {
	usr, err := s.Repo.GetByIDWithProjection(userID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return fmt.Errorf("user %s not found", userID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)); err != nil {
		return AuthError{Reason: "current password does not match"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	utils.InvalidateAuthSession(usr.TokenHash)
	return s.Repo.UpdateSetDocument(userID, bson.M{
		"passwordHash": string(hash),
		"tokenHash":    "",
		"updatedAt":    time.Now(),
	})
}
