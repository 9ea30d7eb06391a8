// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Role represents an application's authorization role.
// Kept in string form for easy persistence and cookies.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// roleRank orders roles for privilege comparison. Unknown roles rank below guest.
func roleRank(r Role) int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleUser:
		return 2
	case RoleGuest:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r carries at least the privilege of minimum.
func (r Role) AtLeast(minimum Role) bool {
	return roleRank(r) >= roleRank(minimum)
}

// Identity represents the authenticated principal returned by an IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string // stable user identifier (e.g., sub)
	Name      string
	Email     string
	Groups    []string
	ExpiresAt time.Time // absolute expiry from IdP token
}

// Session is the server-side record persisted for an authenticated user.
// ID is an opaque session identifier.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }
