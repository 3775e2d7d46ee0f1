package chat

import (
	"context"
	"fmt"

	appointmentRepo "lumiere/database/repository/appointment"
	chatRepo "lumiere/database/repository/chat"
	"lumiere/models"
	"lumiere/services/notification"
	"lumiere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService manages per-appointment conversations between a client and staff.
type ChatService interface {
	Send(senderID, appointmentID, text string, isAdmin bool) (*models.ChatMessage, error)
	List(readerID, appointmentID string, isAdmin bool) ([]models.ChatMessage, error)
	MarkRead(readerID, appointmentID string, isAdmin bool) error
	UnreadCount(readerID, appointmentID string, isAdmin bool) (int64, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo         chatRepo.ChatRepository
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService // optional
}

// NotParticipantError signals access to a conversation the caller is not part of.
type NotParticipantError struct{}

func (e NotParticipantError) Error() string {
	return "not a participant of this conversation"
}

// authorize loads the appointment and checks conversation membership: the
// owning client or any admin.
func (s *DefaultChatService) authorize(userID, appointmentID string, isAdmin bool) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, fmt.Errorf("appointment %s not found", appointmentID)
	}
	if !isAdmin && appt.ClientID != userID {
		return nil, NotParticipantError{}
	}
	return appt, nil
}

// Send appends a message and pushes a notification to the other side.
func (s *DefaultChatService) Send(senderID, appointmentID, text string, isAdmin bool) (*models.ChatMessage, error) {
	if text == "" {
		return nil, fmt.Errorf("message text must not be empty")
	}

	appt, err := s.authorize(senderID, appointmentID, isAdmin)
	if err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ID:            uuid.NewString(),
		AppointmentID: appointmentID,
		SenderID:      senderID,
		Text:          text,
	}
	if err := s.Repo.Insert(msg); err != nil {
		return nil, err
	}

	// Staff replies notify the client; client messages show up on the
	// dashboard badge instead.
	if isAdmin && s.Notifier != nil && senderID != appt.ClientID {
		if err := s.Notifier.SendToUser(context.Background(), appt.ClientID,
			"New message from the salon", text,
			map[string]string{"type": "chat", "appointmentId": appointmentID},
		); err != nil {
			utils.GetLogger().Warn("chat push failed", zap.Error(err))
		}
	}
	return msg, nil
}

// List returns the conversation in send order.
func (s *DefaultChatService) List(readerID, appointmentID string, isAdmin bool) ([]models.ChatMessage, error) {
	if _, err := s.authorize(readerID, appointmentID, isAdmin); err != nil {
		return nil, err
	}
	return s.Repo.ListByAppointment(appointmentID)
}

// MarkRead flags every message from the other side as read.
func (s *DefaultChatService) MarkRead(readerID, appointmentID string, isAdmin bool) error {
	if _, err := s.authorize(readerID, appointmentID, isAdmin); err != nil {
		return err
	}
	return s.Repo.MarkRead(appointmentID, readerID)
}

// UnreadCount reports how many messages await the reader.
func (s *DefaultChatService) UnreadCount(readerID, appointmentID string, isAdmin bool) (int64, error) {
	if _, err := s.authorize(readerID, appointmentID, isAdmin); err != nil {
		return 0, err
	}
	return s.Repo.CountUnread(appointmentID, readerID)
}
