package booking

import (
	appointmentRepo "lumiere/database/repository/appointment"
	catalogRepo "lumiere/database/repository/catalog"
	settingsRepo "lumiere/database/repository/settings"
	"lumiere/models"
	"lumiere/services/notification"
)

// BookingService manages appointment lifecycle and availability.
type BookingService interface {
	GetAvailability(date, serviceID, excludeAppointmentID string) ([]models.Slot, error)

	Book(clientID string, req BookRequest) (*models.Appointment, error)
	Reschedule(clientID, appointmentID string, req RescheduleRequest) (*models.Appointment, error)
	GetAppointment(id string) (*models.Appointment, error)
	ListForClient(clientID string) ([]models.Appointment, error)
	ListForDay(date string) ([]models.Appointment, error)

	// Admin operations.
	ListUnviewed() ([]models.Appointment, error)
	MarkViewed(ids []string) error
	SetStatus(appointmentID, status string) (*models.Appointment, error)
	Contest(appointmentID string, contest models.Contest) (*models.Appointment, error)
	ResolveContest(clientID, appointmentID string, accept bool) (*models.Appointment, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     appointmentRepo.AppointmentRepository
	Catalog  catalogRepo.ServiceRepository
	Settings settingsRepo.SettingsRepository
	Notifier notification.NotificationService // optional; nil disables pushes
}

// BookRequest carries a customer's booking payload.
type BookRequest struct {
	ServiceID    string `json:"serviceId" binding:"required"`
	Date         string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time         string `json:"time" binding:"required"` // "HH:MM"
	HairPhotoURL string `json:"hairPhotoUrl"`
}

// RescheduleRequest carries the new start of an existing appointment.
type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}
