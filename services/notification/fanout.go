package notification

import (
	"context"
	"fmt"

	"lumiere/models"
	"lumiere/utils"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// FCM rejects multicast messages with more than 500 tokens.
const multicastBatchSize = 500

// SendToUser pushes a notification to every device token of one user.
func (s *DefaultNotificationService) SendToUser(ctx context.Context, userID, title, body string, data map[string]string) error {
	usr, err := s.Users.GetByIDWithProjection(userID, bson.M{"id": 1, "fcmTokens": 1})
	if err != nil {
		return fmt.Errorf("SendToUser: could not find user %s: %w", userID, err)
	}
	if usr == nil || len(usr.FCMTokens) == 0 {
		// No push target; callers treat this as best effort.
		return nil
	}
	return s.sendBatches(ctx, usr.FCMTokens, title, body, data)
}

// Broadcast fans a notification out to every token of every user. A failed
// token never aborts the rest; tokens the gateway reports as permanently
// invalid are pruned from their owners' sets.
func (s *DefaultNotificationService) Broadcast(ctx context.Context, title, body string, data map[string]string) error {
	users, err := s.Users.GetAllWithProjection(bson.M{"id": 1, "fcmTokens": 1})
	if err != nil {
		return fmt.Errorf("Broadcast: failed to collect recipients: %w", err)
	}

	var tokens []string
	seen := make(map[string]bool)
	for _, u := range users {
		for _, t := range u.FCMTokens {
			if t != "" && !seen[t] {
				seen[t] = true
				tokens = append(tokens, t)
			}
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return s.sendBatches(ctx, tokens, title, body, data)
}

func (s *DefaultNotificationService) sendBatches(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	logger := utils.GetLogger()

	for start := 0; start < len(tokens); start += multicastBatchSize {
		end := start + multicastBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		msg := &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		resp, err := s.Sender.SendEachForMulticast(ctx, msg)
		if err != nil {
			// Whole-batch failure (network, auth). Log and keep going with
			// the remaining batches.
			logger.Error("push batch failed", zap.Int("batchStart", start), zap.Error(err))
			continue
		}

		for i, r := range resp.Responses {
			if r.Success {
				continue
			}
			token := batch[i]
			logger.Warn("push delivery failed",
				zap.String("token", truncateToken(token)),
				zap.Error(r.Error))
			if deadToken(r.Error) {
				s.pruneToken(token)
			}
		}
	}
	return nil
}

// deadToken reports whether the gateway considers a token permanently
// invalid. Variable so tests can classify without fabricating FCM errors.
var deadToken = func(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}

// pruneToken drops a dead token from every user document that still holds it.
func (s *DefaultNotificationService) pruneToken(token string) {
	if err := s.Users.RemoveTokenEverywhere(token); err != nil {
		utils.GetLogger().Error("failed to prune invalid token", zap.Error(err))
	}
}

// truncateToken keeps logs readable and avoids writing full delivery tokens.
func truncateToken(token string) string {
	if len(token) <= 12 {
		return token
	}
	return token[:12] + "..."
}

// PromotionPayload builds the data map attached to a promotion broadcast.
func PromotionPayload(p *models.Promotion) map[string]string {
	return map[string]string{
		"type":        "promotion",
		"promotionId": p.ID,
	}
}
