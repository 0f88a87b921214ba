package model

import "time"

// Facility is a bookable shared location in the residence, such as the
// community hall, the gym or a lounge. The description doubles as the
// facility's unique human-readable identifier (seed data upserts by it).
type Facility struct {
	ID           uint64    `json:"id"`           // facilities.id
	Description  string    `json:"description"`  // facilities.description (unique)
	OpeningHours string    `json:"openingHours"` // facilities.opening_hours
	CreatedAt    time.Time `json:"createdAt"`    // facilities.created_at
	UpdatedAt    time.Time `json:"updatedAt"`    // facilities.updated_at
}
