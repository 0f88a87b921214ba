package authz

import (
	"time"

	"github.com/iliyamo/residence-hall-booking/internal/model"
)

// BookingPatch is a field-level partial update for a booking. Nil fields
// are left untouched by Apply. The owning user id and the primary key are
// not part of the patch surface at all.
type BookingPatch struct {
	FacilityID *uint64    `json:"facilityId"`
	StartTime  *time.Time `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
}

// Validate rejects patch values that could never be stored, without looking
// at the record being patched.
func (p BookingPatch) Validate() error {
	if p.FacilityID != nil && *p.FacilityID == 0 {
		return errValidationField("facilityId must be a positive id")
	}
	if p.StartTime != nil && p.StartTime.IsZero() {
		return errValidationField("startTime must be a valid timestamp")
	}
	if p.EndTime != nil && p.EndTime.IsZero() {
		return errValidationField("endTime must be a valid timestamp")
	}
	return nil
}

// Apply merges the patch into a copy of the booking and returns it. Only
// present fields overwrite; everything else, identity fields included,
// carries over unchanged.
func (p BookingPatch) Apply(b model.Booking) model.Booking {
	if p.FacilityID != nil {
		b.FacilityID = *p.FacilityID
	}
	if p.StartTime != nil {
		b.StartTime = p.StartTime.UTC()
	}
	if p.EndTime != nil {
		b.EndTime = p.EndTime.UTC()
	}
	return b
}

// EventPatch is the partial-update surface for an event. The organiser set
// is not patchable: membership is fixed at creation in this revision.
type EventPatch struct {
	Location    *string    `json:"location"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Description *string    `json:"description"`
	SignUpLink  *string    `json:"signUpLink"`
}

// Validate checks patch values in isolation; a present sign-up link must
// still be an absolute URL.
func (p EventPatch) Validate() error {
	if p.Location != nil && *p.Location == "" {
		return errValidationField("location must not be empty")
	}
	if p.Description != nil && *p.Description == "" {
		return errValidationField("description must not be empty")
	}
	if p.SignUpLink != nil {
		if err := validateSignUpLink(*p.SignUpLink); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the patch into a copy of the event and returns it.
func (p EventPatch) Apply(e model.Event) model.Event {
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.StartTime != nil {
		e.StartTime = p.StartTime.UTC()
	}
	if p.EndTime != nil {
		e.EndTime = p.EndTime.UTC()
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.SignUpLink != nil {
		e.SignUpLink = *p.SignUpLink
	}
	return e
}
