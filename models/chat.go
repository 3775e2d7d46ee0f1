package models

import "time"

// ChatMessage is an append-only message tied to an appointment.
type ChatMessage struct {
	ID            string    `bson:"id" json:"id"`
	AppointmentID string    `bson:"appointmentId" json:"appointmentId"`
	SenderID      string    `bson:"senderId" json:"senderId"`
	Text          string    `bson:"text" json:"text"`
	IsRead        bool      `bson:"isRead" json:"isRead"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
