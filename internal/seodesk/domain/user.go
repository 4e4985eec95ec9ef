package domain

import (
	"strings"
	"time"
)

// User is a directory entry for someone who has signed in at least once.
// Identities are owned by the external identity provider; we mirror the
// profile claims so invites can be resolved by e-mail.
type User struct {
	ID          string
	Email       string
	FirstName   string
	LastName    string
	AvatarURL   string
	IsOnboarded bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName joins first and last name, trimming whatever is missing.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
