package domain

import (
	"strings"
	"time"
)

// InviteTTL is how long an invite token stays valid after issue or resend.
const InviteTTL = 7 * 24 * time.Hour

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
	InviteStatusRejected InviteStatus = "REJECTED"
	InviteStatusExpired  InviteStatus = "EXPIRED"
	InviteStatusRevoked  InviteStatus = "REVOKED"
)

// ParseInviteStatus accepts any casing and reports whether s names a status.
func ParseInviteStatus(s string) (InviteStatus, bool) {
	st := InviteStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusRejected,
		InviteStatusExpired, InviteStatusRevoked:
		return st, true
	}
	return "", false
}

// Invite is an offer for an e-mail address to join a website. Only the
// fingerprint of the bearer token is kept.
type Invite struct {
	ID              string
	WebsiteID       string
	Email           string
	TokenHash       string
	Status          InviteStatus
	InvitedBy       string // empty when the issuer is unknown
	Message         string
	MemberID        string // set once accepted
	ExpiresAt       time.Time
	AcceptedAt      *time.Time
	RejectedAt      *time.Time
	RevokedAt       *time.Time
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Token is the raw bearer token. It is only populated on the value
	// returned by issue and resend; it is never read back from storage.
	Token string
}

// IsPending reports whether the invite can still change state.
func (i *Invite) IsPending() bool { return i.Status == InviteStatusPending }

// IsExpired reports whether the deadline has passed at now.
func (i *Invite) IsExpired(now time.Time) bool { return now.After(i.ExpiresAt) }
