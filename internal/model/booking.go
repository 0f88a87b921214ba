package model

import "time"

// Booking reserves one facility for one resident over a time interval.
// Earlier revisions of the schema stored a single `slot` instant; the
// start/end pair is the canonical form and the only one persisted here.
//
// Fields:
//  ID         – primary key identifier.
//  FacilityID – facility being reserved.
//  UserID     – resident who created the booking. Always set server-side
//               from the authenticated principal, never from request input,
//               and immutable after creation.
//  StartTime  – beginning of the reserved interval (UTC).
//  EndTime    – end of the reserved interval (UTC).
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
//
// Overlapping bookings for the same facility are representable; the system
// does not detect or reject double-booking.
type Booking struct {
	ID         uint64    `json:"id"`         // bookings.id
	FacilityID uint64    `json:"facilityId"` // bookings.facility_id
	UserID     uint64    `json:"userId"`     // bookings.user_id
	StartTime  time.Time `json:"startTime"`  // bookings.start_time
	EndTime    time.Time `json:"endTime"`    // bookings.end_time
	CreatedAt  time.Time `json:"createdAt"`  // bookings.created_at
	UpdatedAt  time.Time `json:"updatedAt"`  // bookings.updated_at
}
