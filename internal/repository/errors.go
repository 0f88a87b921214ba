// Package repository contains the data access layer over MySQL. Each entity
// gets its own repo type bound to a *sql.DB. Lookups that find nothing
// return the sentinel errors below so handlers can keep "does not exist"
// (404) apart from authorization denials (403) and plain store failures
// (500). Store errors are propagated as-is, never retried here.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrFacilityNotFound is returned when a facility id does not resolve.
var ErrFacilityNotFound = errors.New("facility not found")

// ErrBookingNotFound is returned when a booking id does not resolve. It is
// also the result when a concurrent delete wins between an ownership check
// and the subsequent write: the update/delete affects zero rows.
var ErrBookingNotFound = errors.New("booking not found")

// ErrEventNotFound is returned when an event id does not resolve.
var ErrEventNotFound = errors.New("event not found")

// ErrUserNotFound is returned when a user id or email does not resolve.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when registration collides with an existing
// email address.
var ErrEmailExists = errors.New("email already exists")

// ErrFacilityExists is returned when a facility with the same description
// already exists; descriptions are the upsert key for facilities.
var ErrFacilityExists = errors.New("facility already exists")

// isDuplicateKey reports whether the error is a MySQL unique-key violation
// (error 1062). The driver's typed error carries the number, so no string
// matching on the message is needed.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
