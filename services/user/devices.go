package user

import (
	"fmt"

	"lumiere/utils"

	"go.uber.org/zap"
)

// SubscribeToken registers a push delivery token for the user. Subscribing
// the same token twice leaves exactly one copy in the set.
func (s *DefaultUserService) SubscribeToken(userID, token string) error {
	if token == "" {
		return fmt.Errorf("delivery token must not be empty")
	}
	if err := s.Repo.AddTokenToSet(userID, token); err != nil {
		return err
	}
	utils.GetLogger().Debug("push token subscribed", zap.String("userID", userID))
	return nil
}

// UnsubscribeToken removes a push delivery token from the user's set.
// Removing a token that is not present is a no-op, so the toggle stays
// idempotent across tabs and devices.
func (s *DefaultUserService) UnsubscribeToken(userID, token string) error {
	if token == "" {
		return fmt.Errorf("delivery token must not be empty")
	}
	return s.Repo.RemoveToken(userID, token)
}
