package model

import "time"

// Event is an announced happening in the residence, optionally tied to a
// facility booking. Events are owned collectively: every member of the
// organiser set may update or delete the event. The creating resident is
// always part of the set.
//
// Fields:
//  ID           – primary key identifier.
//  Location     – free-text location of the event.
//  StartTime    – beginning of the event (UTC).
//  EndTime      – end of the event (UTC).
//  Description  – what the event is about.
//  SignUpLink   – optional external sign-up URL.
//  BookingID    – optional reference to the facility booking backing the
//                 event. No cascade: deleting the booking leaves this id
//                 dangling.
//  OrganiserIDs – deduplicated set of residents allowed to manage the
//                 event, stored in the event_organisers join table.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Event struct {
	ID           uint64    `json:"id"`                  // events.id
	Location     string    `json:"location"`            // events.location
	StartTime    time.Time `json:"startTime"`           // events.start_time
	EndTime      time.Time `json:"endTime"`             // events.end_time
	Description  string    `json:"description"`         // events.description
	SignUpLink   string    `json:"signUpLink"`          // events.sign_up_link
	BookingID    *uint64   `json:"bookingId,omitempty"` // events.booking_id (nullable)
	OrganiserIDs []uint64  `json:"organiserIds"`        // event_organisers.user_id rows
	CreatedAt    time.Time `json:"createdAt"`           // events.created_at
	UpdatedAt    time.Time `json:"updatedAt"`           // events.updated_at
}

// HasOrganiser reports whether the given user is part of the organiser set.
func (e *Event) HasOrganiser(userID uint64) bool {
	for _, id := range e.OrganiserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
