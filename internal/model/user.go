package model

import "time"

// Role names stored in users.role. The role is recorded at registration but
// no endpoint currently consults it; facility administration in particular
// is unrestricted. Kept so a later revision can start enforcing it without
// a schema change.
const (
	RoleMember     = "MEMBER"
	RoleHallLeader = "HALL_LEADER"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// User mirrors the `users` table: the local copy of a resident's directory
// identity plus hall-specific metadata (room number, points, role).
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique email address, lower-cased.
//  PasswordHash – bcrypt hashed password.
//  DisplayName  – name shown to other residents.
//  RoomNumber   – the resident's room, free text.
//  Role         – MEMBER, HALL_LEADER or SUPER_ADMIN (stored, not enforced).
//  Points       – raw points balance, reserved for a future rewards feature.
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	DisplayName  string    // users.display_name
	RoomNumber   string    // users.room_number
	Role         string    // users.role
	Points       int       // users.points
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// ActivityGroup is a club or interest group residents may belong to.
// Membership lives in the user_activity_groups join table.
type ActivityGroup struct {
	ID        uint64    // activity_groups.id
	Name      string    // activity_groups.name (unique)
	CreatedAt time.Time // activity_groups.created_at
}

// RefreshToken models an entry in the `refresh_tokens` table. Only the
// SHA-256 hash of the raw token is stored.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
