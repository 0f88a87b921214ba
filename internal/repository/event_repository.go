package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/residence-hall-booking/internal/model"
)

// EventRepo provides CRUD operations for events and their organiser set.
// The organiser set lives in the event_organisers join table; event writes
// that touch it run inside a transaction so an event never becomes visible
// without its organisers.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo returns an EventRepo bound to the given database.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// Create inserts the event row plus one organiser row per member of the
// (already deduplicated) organiser set, in a single transaction. The
// generated id and timestamps are read back onto the record.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const qInsert = `INSERT INTO events (location, start_time, end_time, description, sign_up_link, booking_id) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert, e.Location, e.StartTime, e.EndTime, e.Description, e.SignUpLink, e.BookingID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)

	const qOrganiser = `INSERT INTO event_organisers (event_id, user_id) VALUES (?, ?)`
	for _, uid := range e.OrganiserIDs {
		if _, err := tx.ExecContext(ctx, qOrganiser, e.ID, uid); err != nil {
			return err
		}
	}

	const qSelect = `SELECT id, location, start_time, end_time, description, sign_up_link, booking_id, created_at, updated_at FROM events WHERE id = ?`
	if err := tx.QueryRowContext(ctx, qSelect, e.ID).
		Scan(&e.ID, &e.Location, &e.StartTime, &e.EndTime, &e.Description, &e.SignUpLink, &e.BookingID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByID retrieves an event with its organiser set, returning
// ErrEventNotFound when the id does not resolve.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	const q = `SELECT id, location, start_time, end_time, description, sign_up_link, booking_id, created_at, updated_at FROM events WHERE id = ?`
	var e model.Event
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&e.ID, &e.Location, &e.StartTime, &e.EndTime, &e.Description, &e.SignUpLink, &e.BookingID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	e.OrganiserIDs, err = r.organisers(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns all events ordered by start time, each with its organiser
// set attached. Organisers are fetched in one pass and grouped by event.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	const q = `SELECT id, location, start_time, end_time, description, sign_up_link, booking_id, created_at, updated_at FROM events ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Location, &e.StartTime, &e.EndTime, &e.Description, &e.SignUpLink, &e.BookingID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.OrganiserIDs = make([]uint64, 0, 1)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const qOrg = `SELECT event_id, user_id FROM event_organisers ORDER BY event_id, user_id`
	orgRows, err := r.db.QueryContext(ctx, qOrg)
	if err != nil {
		return nil, err
	}
	defer orgRows.Close()

	byEvent := make(map[uint64][]uint64, len(out))
	for orgRows.Next() {
		var eventID, userID uint64
		if err := orgRows.Scan(&eventID, &userID); err != nil {
			return nil, err
		}
		byEvent[eventID] = append(byEvent[eventID], userID)
	}
	if err := orgRows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if ids, ok := byEvent[out[i].ID]; ok {
			out[i].OrganiserIDs = ids
		}
	}
	return out, nil
}

// Update writes the mutable columns of an event. The organiser set and the
// booking link are fixed after creation and not part of the statement. A
// concurrently deleted row reports ErrEventNotFound.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) error {
	const q = `UPDATE events SET location = ?, start_time = ?, end_time = ?, description = ?, sign_up_link = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, e.Location, e.StartTime, e.EndTime, e.Description, e.SignUpLink, e.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		if _, err := r.GetByID(ctx, e.ID); err != nil {
			return err
		}
	}

	const qSelect = `SELECT id, location, start_time, end_time, description, sign_up_link, booking_id, created_at, updated_at FROM events WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, e.ID).
		Scan(&e.ID, &e.Location, &e.StartTime, &e.EndTime, &e.Description, &e.SignUpLink, &e.BookingID, &e.CreatedAt, &e.UpdatedAt)
}

// Delete removes an event and its organiser rows in one transaction,
// reporting ErrEventNotFound when the event row is already gone.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM event_organisers WHERE event_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEventNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (r *EventRepo) organisers(ctx context.Context, eventID uint64) ([]uint64, error) {
	const q = `SELECT user_id FROM event_organisers WHERE event_id = ? ORDER BY user_id`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uint64, 0, 1)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
