package directory

import (
	"context"
	"database/sql"
	"errors"
)

// Store implements Service over the local users mirror in MySQL.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store bound to the given database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Lookup resolves a resident id to its profile, including activity-group
// membership from the join table.
func (s *Store) Lookup(ctx context.Context, id uint64) (Profile, error) {
	const q = `SELECT id, display_name, room_number FROM users WHERE id = ?`
	var p Profile
	err := s.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.DisplayName, &p.RoomNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}

	const qGroups = `SELECT group_id FROM user_activity_groups WHERE user_id = ? ORDER BY group_id`
	rows, err := s.db.QueryContext(ctx, qGroups, id)
	if err != nil {
		return Profile{}, err
	}
	defer rows.Close()

	p.ActivityGroupIDs = make([]uint64, 0)
	for rows.Next() {
		var gid uint64
		if err := rows.Scan(&gid); err != nil {
			return Profile{}, err
		}
		p.ActivityGroupIDs = append(p.ActivityGroupIDs, gid)
	}
	return p, rows.Err()
}

// UpdateMetadata reads the current profile, merges the patch and writes the
// result back. The read-merge-write is not atomic; last write wins, which
// matches the store's native semantics for every other entity here.
func (s *Store) UpdateMetadata(ctx context.Context, id uint64, patch MetadataPatch) (Profile, error) {
	current, err := s.Lookup(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	merged := MergeMetadata(current, patch)

	const q = `UPDATE users SET display_name = ?, room_number = ? WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, q, merged.DisplayName, merged.RoomNumber, id); err != nil {
		return Profile{}, err
	}
	return merged, nil
}
