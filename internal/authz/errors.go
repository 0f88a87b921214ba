// Package authz decides whether a principal may create, update or delete a
// booking or event, and computes the effective write payload for creation.
// Decisions are pure functions over records the caller has already fetched:
// nothing in this package touches the database, so a missing record must be
// detected by the caller (repository not-found sentinel) before asking for a
// decision. That ordering keeps "does not exist" and "not yours" distinct
// all the way to the client.
package authz

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when a create or mutate decision is asked
// for with no authenticated principal. Handlers translate it into 401.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden is returned when the record exists but the principal is not
// its owner (bookings) or not in its organiser set (events). Handlers
// translate it into 403, never 404.
var ErrForbidden = errors.New("forbidden")

// ErrValidation marks malformed creation or patch input, such as a relative
// sign-up URL or a missing required field. Wrapped errors carry the detail;
// compare with errors.Is. Handlers translate it into 400.
var ErrValidation = errors.New("invalid input")

func errValidationField(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}
