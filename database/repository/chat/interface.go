package chatRepo

import "lumiere/models"

// ChatRepository defines persistence operations for appointment chat messages.
// The collection is append-only; messages are never edited or removed.
type ChatRepository interface {
	Insert(msg *models.ChatMessage) error
	ListByAppointment(appointmentID string) ([]models.ChatMessage, error)
	MarkRead(appointmentID, readerID string) error
	CountUnread(appointmentID, readerID string) (int64, error)
}
