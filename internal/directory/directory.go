// Package directory exposes resident identity the way an external
// directory service would: lookup by id and partial metadata updates. The
// rest of the application depends only on the Service interface, so the
// backing store can be swapped for a fake in tests or for a real identity
// provider later without touching handlers or the authorization core.
package directory

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an id does not resolve in the directory.
var ErrNotFound = errors.New("user not found in directory")

// Profile is what the directory knows about a resident: identity, display
// metadata and activity-group membership.
type Profile struct {
	ID               uint64   `json:"id"`
	DisplayName      string   `json:"name"`
	RoomNumber       string   `json:"roomNumber"`
	ActivityGroupIDs []uint64 `json:"activityGroupIds"`
}

// MetadataPatch is a field-level partial update of a profile's metadata.
// Nil fields keep their current value; there is no way to blank a field by
// omitting it.
type MetadataPatch struct {
	DisplayName *string `json:"name"`
	RoomNumber  *string `json:"roomNumber"`
}

// Service is the capability the application holds on the directory.
type Service interface {
	// Lookup resolves a resident id to its profile, or ErrNotFound.
	Lookup(ctx context.Context, id uint64) (Profile, error)
	// UpdateMetadata merges the patch into the stored metadata and returns
	// the resulting profile.
	UpdateMetadata(ctx context.Context, id uint64, patch MetadataPatch) (Profile, error)
}

// MergeMetadata applies a patch to a profile, overwriting only the fields
// the patch carries. Pure function; both implementations and tests share
// it so the merge rule cannot drift.
func MergeMetadata(p Profile, patch MetadataPatch) Profile {
	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.RoomNumber != nil {
		p.RoomNumber = *patch.RoomNumber
	}
	return p
}
