package models

import "time"

// Appointment lifecycle statuses.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusContested = "contested"
)

// Appointment represents a customer's booking of a salon service.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	ClientID      string    `bson:"clientId" json:"clientId"`
	ServiceID     string    `bson:"serviceId" json:"serviceId"`
	Start         time.Time `bson:"start" json:"start"`
	End           time.Time `bson:"end" json:"end"`
	Status        string    `bson:"status" json:"status"`
	Contest       *Contest  `bson:"contest,omitempty" json:"contest,omitempty"`
	ViewedByAdmin bool      `bson:"viewedByAdmin" json:"viewedByAdmin"`
	HairPhotoURL  string    `bson:"hairPhotoUrl,omitempty" json:"hairPhotoUrl,omitempty"`
	ReminderSent  bool      `bson:"reminderSent,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Contest carries an admin's counter-proposal for an appointment.
type Contest struct {
	Reason                  string  `bson:"reason" json:"reason"`
	ProposedDurationMinutes int     `bson:"proposedDurationMinutes,omitempty" json:"proposedDurationMinutes,omitempty"`
	ProposedPrice           float64 `bson:"proposedPrice,omitempty" json:"proposedPrice,omitempty"`
}

// Active reports whether the appointment still occupies its time interval.
func (a *Appointment) Active() bool {
	return a.Status != StatusCancelled
}
