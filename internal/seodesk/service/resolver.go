package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/idx"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// MembershipResolver turns an accepted invite into a membership.
type MembershipResolver struct{}

// Resolve creates the membership for inv using the repositories of s,
// normally a transaction. inv must already be validated as PENDING and
// unexpired.
func (MembershipResolver) Resolve(
	ctx context.Context,
	s store.Store,
	inv domain.Invite,
	now time.Time,
) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	// 1. The invitee must have signed in at least once.
	user, err := s.Users().GetUserByEmail(ctx, inv.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite accepted for unknown email", slog.String("invite_id", inv.ID))
			return domain.Member{}, ErrNoAccount
		}
		log.Error("failed to fetch invitee", slog.Any("error", err))
		return domain.Member{}, err
	}

	// 2. At most one membership per (user, website).
	_, err = s.Members().GetMemberByUserAndWebsite(ctx, user.ID, inv.WebsiteID)
	if err == nil {
		log.Warn("invitee is already a member",
			slog.String("invite_id", inv.ID),
			slog.String("user_id", user.ID),
		)
		return domain.Member{}, ErrAlreadyMember
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to fetch membership", slog.Any("error", err))
		return domain.Member{}, err
	}

	// 3. Create the membership.
	invitedAt := inv.CreatedAt
	member := domain.Member{
		ID:        idx.NewAt(now).String(),
		UserID:    user.ID,
		WebsiteID: inv.WebsiteID,
		IsActive:  true,
		JoinedAt:  now,
		InvitedAt: &invitedAt,
		InvitedBy: inv.InvitedBy,
		CreatedAt: now,
		UpdatedAt: now,
		User:      &user,
	}
	if err := s.Members().CreateMember(ctx, member); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Member{}, ErrAlreadyMember
		}
		log.Error("failed to create member", slog.Any("error", err))
		return domain.Member{}, err
	}

	return member, nil
}
