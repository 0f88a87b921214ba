package authz

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/iliyamo/residence-hall-booking/internal/model"
)

// Principal identifies the authenticated caller of an operation. The zero
// value means anonymous: a request that carried no resolvable identity.
type Principal uint64

// Authenticated reports whether the principal carries a real identity.
func (p Principal) Authenticated() bool { return p != 0 }

// BookingInput is the caller-suppliable part of a new booking. The owning
// user id is deliberately absent: it is always taken from the principal,
// regardless of anything the request body claims.
type BookingInput struct {
	FacilityID uint64    `json:"facilityId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// EventInput is the caller-suppliable part of a new event. OrganiserIDs may
// name co-organisers; the creating principal is added to the set whether or
// not it appears in the list.
type EventInput struct {
	Location     string    `json:"location"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Description  string    `json:"description"`
	SignUpLink   string    `json:"signUpLink"`
	BookingID    *uint64   `json:"bookingId"`
	OrganiserIDs []uint64  `json:"organiserIds"`
}

// NewBooking computes the effective payload for creating a booking on
// behalf of the principal. The returned booking has UserID forced to the
// principal. Anonymous principals are rejected with ErrUnauthenticated
// before any field is looked at.
func NewBooking(p Principal, in BookingInput) (model.Booking, error) {
	if !p.Authenticated() {
		return model.Booking{}, ErrUnauthenticated
	}
	if in.FacilityID == 0 {
		return model.Booking{}, fmt.Errorf("%w: facilityId is required", ErrValidation)
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return model.Booking{}, fmt.Errorf("%w: startTime and endTime are required", ErrValidation)
	}
	return model.Booking{
		FacilityID: in.FacilityID,
		UserID:     uint64(p),
		StartTime:  in.StartTime.UTC(),
		EndTime:    in.EndTime.UTC(),
	}, nil
}

// NewEvent computes the effective payload for creating an event. The
// organiser set is the deduplicated union of the principal and the supplied
// list; duplicates of the creator in the list are absorbed, not rejected.
func NewEvent(p Principal, in EventInput) (model.Event, error) {
	if !p.Authenticated() {
		return model.Event{}, ErrUnauthenticated
	}
	if strings.TrimSpace(in.Location) == "" {
		return model.Event{}, fmt.Errorf("%w: location is required", ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return model.Event{}, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return model.Event{}, fmt.Errorf("%w: startTime and endTime are required", ErrValidation)
	}
	if err := validateSignUpLink(in.SignUpLink); err != nil {
		return model.Event{}, err
	}
	return model.Event{
		Location:     strings.TrimSpace(in.Location),
		StartTime:    in.StartTime.UTC(),
		EndTime:      in.EndTime.UTC(),
		Description:  in.Description,
		SignUpLink:   in.SignUpLink,
		BookingID:    in.BookingID,
		OrganiserIDs: organiserSet(p, in.OrganiserIDs),
	}, nil
}

// CanMutateBooking decides whether the principal may update or delete the
// given booking. The same predicate gates both mutations. The booking must
// have been fetched by the caller; a nil record is a caller bug, not a
// decision this package makes.
func CanMutateBooking(p Principal, b *model.Booking) error {
	if !p.Authenticated() {
		return ErrUnauthenticated
	}
	if b.UserID != uint64(p) {
		return ErrForbidden
	}
	return nil
}

// CanMutateEvent decides whether the principal may update or delete the
// given event: allowed iff the principal is in the organiser set.
func CanMutateEvent(p Principal, e *model.Event) error {
	if !p.Authenticated() {
		return ErrUnauthenticated
	}
	if !e.HasOrganiser(uint64(p)) {
		return ErrForbidden
	}
	return nil
}

// organiserSet builds the deduplicated organiser list for a new event. The
// creator always comes first; the remaining ids keep their supplied order
// with repeats and zero ids dropped. Order carries no meaning.
func organiserSet(creator Principal, supplied []uint64) []uint64 {
	out := []uint64{uint64(creator)}
	seen := map[uint64]struct{}{uint64(creator): {}}
	for _, id := range supplied {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// validateSignUpLink requires a non-empty absolute http(s) URL.
func validateSignUpLink(link string) error {
	if strings.TrimSpace(link) == "" {
		return fmt.Errorf("%w: signUpLink is required", ErrValidation)
	}
	u, err := url.Parse(link)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: signUpLink must be an absolute URL", ErrValidation)
	}
	return nil
}
