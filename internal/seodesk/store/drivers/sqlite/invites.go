package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store/drivers/sqlite/gen"
)

type invitesRepo struct {
	q *gen.Queries
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	created := inv.CreatedAt
	if created.IsZero() {
		created = now()
	}
	err := r.q.CreateMemberInvite(ctx, gen.CreateMemberInviteParams{
		ID:        inv.ID,
		WebsiteID: inv.WebsiteID,
		Email:     domain.NormalizeEmail(inv.Email),
		TokenHash: inv.TokenHash,
		InvitedBy: mapStringNull(inv.InvitedBy),
		Message:   inv.Message,
		ExpiresAt: inv.ExpiresAt.UTC(),
		CreatedAt: created.UTC(),
	})
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	row, err := r.q.GetMemberInviteByID(ctx, id)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return mapInvite(row), nil
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	row, err := r.q.GetMemberInviteByTokenHash(ctx, hash)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return mapInvite(row), nil
}

func (r *invitesRepo) GetLatestInvite(ctx context.Context, email, websiteID string) (domain.Invite, error) {
	row, err := r.q.GetLatestMemberInvite(ctx, gen.GetLatestMemberInviteParams{
		Email:     domain.NormalizeEmail(email),
		WebsiteID: websiteID,
	})
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return mapInvite(row), nil
}

func (r *invitesRepo) ListInvitesByWebsite(
	ctx context.Context,
	websiteID string,
	status domain.InviteStatus,
	limit, offset int,
) ([]domain.Invite, error) {
	rows, err := r.q.ListInvitesByWebsite(ctx, gen.ListInvitesByWebsiteParams{
		WebsiteID: websiteID,
		Status:    string(status),
		Limit:     int64(limit),
		Offset:    int64(offset),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Invite, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapInvite(row))
	}
	return out, nil
}

func (r *invitesRepo) CountInvitesByWebsite(
	ctx context.Context,
	websiteID string,
	status domain.InviteStatus,
) (int, error) {
	n, err := r.q.CountInvitesByWebsite(ctx, gen.CountInvitesByWebsiteParams{
		WebsiteID: websiteID,
		Status:    string(status),
	})
	return int(n), err
}

func (r *invitesRepo) MarkInviteAccepted(ctx context.Context, id, memberID string, at time.Time) error {
	n, err := r.q.MarkInviteAccepted(ctx, gen.MarkInviteAcceptedParams{
		MemberID:   mapStringNull(memberID),
		AcceptedAt: at.UTC(),
		ID:         id,
	})
	return expectRows(n, err, store.ErrPreconditionFailed)
}

func (r *invitesRepo) MarkInviteRejected(ctx context.Context, id, reason string, at time.Time) error {
	n, err := r.q.MarkInviteRejected(ctx, gen.MarkInviteRejectedParams{
		RejectionReason: reason,
		RejectedAt:      at.UTC(),
		ID:              id,
	})
	return expectRows(n, err, store.ErrPreconditionFailed)
}

func (r *invitesRepo) MarkInviteRevoked(ctx context.Context, id string, at time.Time) error {
	n, err := r.q.MarkInviteRevoked(ctx, gen.MarkInviteRevokedParams{
		RevokedAt: at.UTC(),
		ID:        id,
	})
	return expectRows(n, err, store.ErrPreconditionFailed)
}

func (r *invitesRepo) MarkInviteExpired(ctx context.Context, id string, at time.Time) error {
	n, err := r.q.MarkInviteExpired(ctx, gen.MarkInviteExpiredParams{
		UpdatedAt: at.UTC(),
		ID:        id,
	})
	return expectRows(n, err, store.ErrPreconditionFailed)
}

func (r *invitesRepo) RotateInviteToken(
	ctx context.Context,
	id, tokenHash string,
	expiresAt, at time.Time,
) error {
	n, err := r.q.RotateInviteToken(ctx, gen.RotateInviteTokenParams{
		TokenHash: tokenHash,
		ExpiresAt: expiresAt.UTC(),
		UpdatedAt: at.UTC(),
		ID:        id,
	})
	return expectRows(n, mapConstraint(err), store.ErrPreconditionFailed)
}

func (r *invitesRepo) DeleteTerminalInvitesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.q.DeleteTerminalInvitesBefore(ctx, cutoff.UTC())
}
