package sqlite

import (
	"context"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store/drivers/sqlite/gen"
)

type membersRepo struct {
	q *gen.Queries
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	joined := m.JoinedAt
	if joined.IsZero() {
		joined = now()
	}
	err := r.q.CreateMember(ctx, gen.CreateMemberParams{
		ID:        m.ID,
		UserID:    m.UserID,
		WebsiteID: m.WebsiteID,
		IsActive:  m.IsActive,
		JoinedAt:  joined.UTC(),
		InvitedAt: mapOptionalTime(m.InvitedAt),
		InvitedBy: mapStringNull(m.InvitedBy),
	})
	return mapConstraint(err)
}

func (r *membersRepo) GetMemberByID(ctx context.Context, id string) (domain.Member, error) {
	row, err := r.q.GetMemberWithUser(ctx, id)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return mapMemberWithUser(row), nil
}

func (r *membersRepo) GetMemberByUserAndWebsite(
	ctx context.Context,
	userID, websiteID string,
) (domain.Member, error) {
	row, err := r.q.GetMemberByUserAndWebsite(ctx, gen.GetMemberByUserAndWebsiteParams{
		UserID:    userID,
		WebsiteID: websiteID,
	})
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return mapMember(row), nil
}

func (r *membersRepo) ListMembersByWebsite(
	ctx context.Context,
	websiteID string,
	limit, offset int,
) ([]domain.Member, error) {
	rows, err := r.q.ListMembersByWebsite(ctx, gen.ListMembersByWebsiteParams{
		WebsiteID: websiteID,
		Limit:     int64(limit),
		Offset:    int64(offset),
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMemberWithUser(row))
	}
	return out, nil
}

func (r *membersRepo) CountMembersByWebsite(ctx context.Context, websiteID string) (int, error) {
	n, err := r.q.CountMembersByWebsite(ctx, websiteID)
	return int(n), err
}

func (r *membersRepo) CountActiveMembersByWebsite(ctx context.Context, websiteID string) (int, error) {
	n, err := r.q.CountActiveMembersByWebsite(ctx, websiteID)
	return int(n), err
}

func (r *membersRepo) SetMemberActive(ctx context.Context, id string, active bool) error {
	n, err := r.q.SetMemberActive(ctx, gen.SetMemberActiveParams{
		IsActive:  active,
		UpdatedAt: now(),
		ID:        id,
	})
	return expectRows(n, err, store.ErrNotFound)
}
