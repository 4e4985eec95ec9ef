package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
)

// Service errors carry the message shown to API callers, so their text is
// part of the public contract.
var (
	// Not found
	ErrWebsiteNotFound         = errors.New("Website not found")
	ErrInviteNotFound          = errors.New("Invite not found")
	ErrInviteNotFoundOrExpired = errors.New("Invite not found or expired")
	ErrNoAccount               = errors.New("No account found with this email. Please sign up first.")
	ErrMemberNotFound          = errors.New("Member not found")
	ErrUserNotFound            = errors.New("User not found")
	ErrKeywordNotFound         = errors.New("Keyword not found")
	ErrPrimaryKeywordNotFound  = errors.New("Primary keyword not found")
	ErrArticleNotFound         = errors.New("Article not found")
	ErrScrapingIncomplete      = errors.New("Please complete website scraping before proceeding")

	// Conflict
	ErrPendingInviteExists    = errors.New("This email already has a pending invitation")
	ErrEmailAlreadyMember     = errors.New("This email is already a member of this website")
	ErrAlreadyMember          = errors.New("You are already a member of this website")
	ErrInviteAlreadyProcessed = errors.New("Invite has already been processed")
	ErrEmailTaken             = errors.New("This email is already linked to another account")

	// Bad request / invalid state
	ErrInvalidEmail         = errors.New("Please provide a valid email address")
	ErrInvalidStatus        = errors.New("Invalid invite status")
	ErrInviteNotPending     = errors.New("Invite is no longer pending")
	ErrInviteExpired        = errors.New("Invite has expired")
	ErrInvitationNotValid   = errors.New("This invitation is no longer valid")
	ErrInvitationExpired    = errors.New("This invitation has expired")
	ErrOnlyPendingRevocable = errors.New("Only pending invitations can be revoked")
	ErrOnlyPendingResend    = errors.New("Only pending invitations can be resent")
	ErrInvalidURL           = errors.New("Please provide a valid website URL")
	ErrArticleExists        = errors.New("An article already exists for this keyword")
	ErrInvalidRequest       = errors.New("Invalid request")
	ErrInvalidArticleStatus = errors.New("Article status must be DRAFT or PUBLISHED")
	ErrProfileIncomplete    = errors.New("Token does not carry an email address")

	// Forbidden
	ErrForbidden = errors.New("You do not have access to this website")
)

// InviteStateError reports a transition attempted on an invite that already
// left PENDING. It matches ErrInviteNotPending with errors.Is.
type InviteStateError struct {
	Status domain.InviteStatus
}

func (e *InviteStateError) Error() string {
	return fmt.Sprintf("Invite has already been %s", strings.ToLower(string(e.Status)))
}

func (e *InviteStateError) Is(target error) bool {
	return target == ErrInviteNotPending
}
