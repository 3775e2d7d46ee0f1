package models

import "time"

// Hair length categories used for tiered pricing.
const (
	HairShort  = "short"
	HairMedium = "medium"
	HairLong   = "long"
)

// Service represents a bookable salon service.
type Service struct {
	ID              string             `bson:"id" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Price           float64            `bson:"price" json:"price"`                               // base price; ignored when TierPrices is set
	TierPrices      map[string]float64 `bson:"tierPrices,omitempty" json:"tierPrices,omitempty"` // keyed by hair length category
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	ImageURL        string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PriceFor resolves the price for a hair length category, falling back to the
// base price when no tier matches.
func (s *Service) PriceFor(hairLength string) float64 {
	if len(s.TierPrices) > 0 {
		if p, ok := s.TierPrices[hairLength]; ok {
			return p
		}
	}
	return s.Price
}
