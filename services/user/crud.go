package user

import (
	"fmt"
	"time"

	"lumiere/models"
	"lumiere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByIDWithProjection(userID, nil)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	return usr, nil
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmailWithProjection(email, nil)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("no user with email %s", email)
	}
	return usr, nil
}

// UpdateProfile applies a partial update of self-editable fields.
// isAdmin is deliberately not reachable from here.
func (s *DefaultUserService) UpdateProfile(userID string, req ProfileUpdateRequest) (*models.User, error) {
	logger := utils.GetLogger()
	logger.Debug("UpdateProfile called", zap.String("userID", userID))

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if req.Name != "" {
		updateFields["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		updateFields["phoneNumber"] = req.PhoneNumber
	}
	if req.Address != nil {
		updateFields["address"] = req.Address
	}

	if err := s.Repo.UpdateSetDocument(userID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetUserByID(userID)
}

// DeleteUser removes the account document and drops any cached session.
func (s *DefaultUserService) DeleteUser(userID string) error {
	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1, "tokenHash": 1})
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr != nil {
		utils.InvalidateAuthSession(usr.TokenHash)
	}
	return s.Repo.Delete(userID)
}

// GetAllUsers returns every user without credential fields.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAllWithProjection(bson.M{
		"passwordHash": 0,
		"tokenHash":    0,
	})
}
