package appointmentRepo

import (
	"time"

	"lumiere/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AppointmentRepository defines persistence operations for appointments.
// Appointments are never hard-deleted; cancellation is a status change.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	GetByID(id string) (*models.Appointment, error)
	GetByClient(clientID string) ([]models.Appointment, error)
	GetByDay(dayStart, dayEnd time.Time) ([]models.Appointment, error)
	GetUnviewed() ([]models.Appointment, error)
	MarkViewed(ids []string) error
	GetDueForReminder(from, to time.Time) ([]models.Appointment, error)
}
