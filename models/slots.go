package models

// Slot is a fixed-granularity candidate appointment start time within
// business hours.
type Slot struct {
	Time      string `json:"time"` // "HH:MM"
	Available bool   `json:"available"`
}
