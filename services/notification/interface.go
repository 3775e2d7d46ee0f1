package notification

import (
	"context"

	userRepo "lumiere/database/repository/user"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendToUser(ctx context.Context, userID, title, body string, data map[string]string) error
	Broadcast(ctx context.Context, title, body string, data map[string]string) error
}

// PushSender is the slice of the FCM client the service needs; it exists so
// tests can substitute the gateway.
type PushSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users  userRepo.UserRepository
	Sender PushSender
}

func NewDefaultNotificationService(users userRepo.UserRepository, sender PushSender) *DefaultNotificationService {
	return &DefaultNotificationService{Users: users, Sender: sender}
}
