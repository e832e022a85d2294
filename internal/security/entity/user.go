package entity

import "time"

// UserStatus represents the lifecycle state of a user account.
type UserStatus int16

const (
	UserStatusUnknown UserStatus = iota
	UserStatusActive
	UserStatusInactive
	UserStatusBanned
)

func (s UserStatus) Ensure() UserStatus {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusBanned:
		return s
	default:
		return UserStatusUnknown
	}
}

type User struct {
	ID        int64
	Username  string
	Password  string // bcrypt hashed
	Status    UserStatus
	Roles     []Role
	UpdatedAt time.Time
}

// RefreshSession tracks one issued refresh token. The token itself is never
// stored, only the HMAC of its jti.
type RefreshSession struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
}
