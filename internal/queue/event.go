// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// BookingCreatedEvent is published after a facility booking is persisted.
// It carries enough for downstream consumers (activity log, future
// reminder delivery) without querying the primary database. EventID is a
// random correlation id, not the booking id.
type BookingCreatedEvent struct {
	EventID      string `json:"event_id"`
	BookingID    uint64 `json:"booking_id"`
	UserID       uint64 `json:"user_id"`
	FacilityID   uint64 `json:"facility_id"`
	FacilityName string `json:"facility_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	CreatedAt    string `json:"created_at"`
}
