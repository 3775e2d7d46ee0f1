package models

import "time"

// Promotion represents a time-bounded discount over a set of services.
// Creating one fans a push notification out to every registered device.
type Promotion struct {
	ID                 string    `bson:"id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Description        string    `bson:"description,omitempty" json:"description,omitempty"`
	DiscountPercentage float64   `bson:"discountPercentage" json:"discountPercentage"`
	ServiceIDs         []string  `bson:"serviceIds" json:"serviceIds"`
	StartDate          time.Time `bson:"startDate" json:"startDate"`
	EndDate            time.Time `bson:"endDate" json:"endDate"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}

// ActiveAt reports whether the promotion covers the given instant.
func (p *Promotion) ActiveAt(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}
