package domain

import "time"

// Member is the durable (user, website) relationship. Removal only flips
// IsActive; rows are never deleted.
type Member struct {
	ID        string
	UserID    string
	WebsiteID string
	IsActive  bool
	JoinedAt  time.Time
	InvitedAt *time.Time
	InvitedBy string
	CreatedAt time.Time
	UpdatedAt time.Time

	// User is populated by list and get queries that join users.
	User *User
}
