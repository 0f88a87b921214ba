package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/residence-hall-booking/internal/model"
)

// FacilityRepo provides CRUD operations for facilities. Facility rows are
// administrative data; they carry no owner, so create and delete take no
// principal.
type FacilityRepo struct {
	db *sql.DB
}

// NewFacilityRepo constructs a FacilityRepo bound to the given database.
func NewFacilityRepo(db *sql.DB) *FacilityRepo { return &FacilityRepo{db: db} }

// Create inserts a facility and populates the generated id plus timestamps
// by reading the row back. A duplicate description maps to
// ErrFacilityExists (MySQL error 1062 on the unique key).
func (r *FacilityRepo) Create(ctx context.Context, f *model.Facility) error {
	const qInsert = `INSERT INTO facilities (description, opening_hours) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, f.Description, f.OpeningHours)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrFacilityExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)

	const qSelect = `SELECT id, description, opening_hours, created_at, updated_at FROM facilities WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, f.ID).
		Scan(&f.ID, &f.Description, &f.OpeningHours, &f.CreatedAt, &f.UpdatedAt)
}

// GetByID retrieves a facility by id, returning ErrFacilityNotFound when no
// row matches.
func (r *FacilityRepo) GetByID(ctx context.Context, id uint64) (*model.Facility, error) {
	const q = `SELECT id, description, opening_hours, created_at, updated_at FROM facilities WHERE id = ?`
	var f model.Facility
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&f.ID, &f.Description, &f.OpeningHours, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}
	return &f, nil
}

// List returns all facilities ordered by description.
func (r *FacilityRepo) List(ctx context.Context) ([]model.Facility, error) {
	const q = `SELECT id, description, opening_hours, created_at, updated_at FROM facilities ORDER BY description`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Facility, 0)
	for rows.Next() {
		var f model.Facility
		if err := rows.Scan(&f.ID, &f.Description, &f.OpeningHours, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Delete removes a facility by id. Bookings referencing the facility are
// not cascaded; the foreign key will reject the delete while bookings
// exist, which surfaces as a plain store error to the caller.
func (r *FacilityRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM facilities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFacilityNotFound
	}
	return nil
}
