// models/user.go
package models

import "time"

// User represents a salon customer or staff member.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	IsAdmin      bool      `bson:"isAdmin" json:"isAdmin"`
	FCMTokens    []string  `bson:"fcmTokens,omitempty" json:"-"` // push delivery tokens, set semantics
	Address      *Address  `bson:"address,omitempty" json:"address,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"` // SHA-256 of the active session token
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Address holds the optional postal address used for home-service visits.
type Address struct {
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Street     string `bson:"street" json:"street"`
	Number     string `bson:"number,omitempty" json:"number,omitempty"`
	District   string `bson:"district,omitempty" json:"district,omitempty"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
}

// PublicProfile strips fields that must never leave the server.
func (u *User) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"phoneNumber": u.PhoneNumber,
		"isAdmin":     u.IsAdmin,
		"address":     u.Address,
		"createdAt":   u.CreatedAt,
	}
}
