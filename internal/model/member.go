package model

import "time"

// Member represents a finance-committee user as stored in the `members`
// table. Members authenticate with email + password and carry a role that
// gates access to administrative endpoints.
//
// Fields:
//  ID           – primary key identifier of the member.
//  Name         – display name.
//  Email        – unique email address (stored lower-case).
//  PasswordHash – bcrypt hashed password.
//  Role         – either RoleAdmin or RoleFinance.
//  IsActive     – whether the account may log in; deactivation is the
//                 soft-delete mechanism for members.
//  CreatedAt    – timestamp of creation.
//  LastLogin    – when the member last logged in (nil if never).
type Member struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// Member roles. RoleFinance is the default for new registrations; RoleAdmin
// additionally unlocks member administration and system settings.
const (
	RoleAdmin   = "admin"
	RoleFinance = "finance"
)

// ValidRole reports whether the given string is a known member role.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleFinance
}

// RefreshToken models an entry in the `refresh_tokens` table. Only the
// SHA-256 hash of the raw token is persisted.
type RefreshToken struct {
	ID        uint64
	MemberID  uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
