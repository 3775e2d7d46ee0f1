package user

import (
	"fmt"
	"time"

	"lumiere/config"
	"lumiere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GrantAdmin flips isAdmin for the given account. It is guarded by the ops
// bootstrap key so the flag can never be set through the self-service
// document paths a user can write.
func (s *DefaultUserService) GrantAdmin(email, bootstrapKey string) error {
	if config.AppConfig.AdminBootstrapKey == "" {
		return fmt.Errorf("admin bootstrap is disabled")
	}
	if bootstrapKey != config.AppConfig.AdminBootstrapKey {
		return AuthError{Reason: "invalid bootstrap key"}
	}

	usr, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if usr == nil {
		return fmt.Errorf("no user with email %s", email)
	}

	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{
		"isAdmin":   true,
		"updatedAt": time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to grant admin: %w", err)
	}

	utils.GetLogger().Info("admin granted", zap.String("email", email))
	return nil
}
