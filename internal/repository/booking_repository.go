package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/residence-hall-booking/internal/model"
)

// BookingRepo provides CRUD operations for facility bookings. Overlapping
// intervals on the same facility are allowed: no overlap check exists at
// any layer, matching the behaviour of the routers this service replaces.
// All timestamps are stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts a booking and reads the row back so the caller gets the
// generated id and timestamps. UserID must already be the authenticated
// principal; the repository trusts the authz layer for that.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const qInsert = `INSERT INTO bookings (facility_id, user_id, start_time, end_time) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, b.FacilityID, b.UserID, b.StartTime, b.EndTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const qSelect = `SELECT id, facility_id, user_id, start_time, end_time, created_at, updated_at FROM bookings WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, b.ID).
		Scan(&b.ID, &b.FacilityID, &b.UserID, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt)
}

// GetByID retrieves a booking by id, returning ErrBookingNotFound when no
// row matches. Handlers call this before any ownership decision so a
// missing record is reported as not-found rather than forbidden.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT id, facility_id, user_id, start_time, end_time, created_at, updated_at FROM bookings WHERE id = ?`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&b.ID, &b.FacilityID, &b.UserID, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// List returns all bookings ordered by start time.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
	const q = `SELECT id, facility_id, user_id, start_time, end_time, created_at, updated_at FROM bookings ORDER BY start_time`
	return r.queryBookings(ctx, q)
}

// ListByFacility returns the bookings of one facility ordered by start
// time. Used for the facility detail view's relational include.
func (r *BookingRepo) ListByFacility(ctx context.Context, facilityID uint64) ([]model.Booking, error) {
	const q = `SELECT id, facility_id, user_id, start_time, end_time, created_at, updated_at FROM bookings WHERE facility_id = ? ORDER BY start_time`
	return r.queryBookings(ctx, q, facilityID)
}

// ListByUser returns the bookings created by one resident.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	const q = `SELECT id, facility_id, user_id, start_time, end_time, created_at, updated_at FROM bookings WHERE user_id = ? ORDER BY start_time`
	return r.queryBookings(ctx, q, userID)
}

// Update writes the mutable columns of a booking. user_id is deliberately
// not in the statement: ownership never changes after creation. A vanished
// row (deleted concurrently) reports ErrBookingNotFound.
func (r *BookingRepo) Update(ctx context.Context, b *model.Booking) error {
	const q = `UPDATE bookings SET facility_id = ?, start_time = ?, end_time = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, b.FacilityID, b.StartTime, b.EndTime, b.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		// The row may also be unchanged rather than missing; distinguish.
		if _, err := r.GetByID(ctx, b.ID); err != nil {
			return err
		}
	}

	const qSelect = `SELECT id, facility_id, user_id, start_time, end_time, created_at, updated_at FROM bookings WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, b.ID).
		Scan(&b.ID, &b.FacilityID, &b.UserID, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt)
}

// Delete removes a booking by id, reporting ErrBookingNotFound when the
// row is already gone.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepo) queryBookings(ctx context.Context, q string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.FacilityID, &b.UserID, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
