package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// MemberService administers the memberships of a website. Members are never
// deleted: removal deactivates them.
type MemberService struct {
	Store  store.Store
	Access *Access
}

// List returns one page of a website's members with user details.
func (s *MemberService) List(
	ctx context.Context,
	websiteID, actorID string,
	req domain.PageRequest,
) (domain.Page[domain.Member], error) {
	if _, err := s.Access.RequireWebsite(ctx, actorID, websiteID); err != nil {
		return domain.Page[domain.Member]{}, err
	}

	items, err := s.Store.Members().ListMembersByWebsite(ctx, websiteID, req.Limit, req.Offset())
	if err != nil {
		return domain.Page[domain.Member]{}, err
	}
	total, err := s.Store.Members().CountMembersByWebsite(ctx, websiteID)
	if err != nil {
		return domain.Page[domain.Member]{}, err
	}
	return domain.NewPage(items, total, req), nil
}

// CountActive returns the number of active memberships of a website.
func (s *MemberService) CountActive(ctx context.Context, websiteID, actorID string) (int, error) {
	if _, err := s.Access.RequireWebsite(ctx, actorID, websiteID); err != nil {
		return 0, err
	}
	return s.Store.Members().CountActiveMembersByWebsite(ctx, websiteID)
}

// Get returns a member with user details.
func (s *MemberService) Get(ctx context.Context, memberID, actorID string) (domain.Member, error) {
	m, err := s.Store.Members().GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Member{}, ErrMemberNotFound
		}
		return domain.Member{}, err
	}
	if _, err := s.Access.RequireWebsite(ctx, actorID, m.WebsiteID); err != nil {
		return domain.Member{}, err
	}
	return m, nil
}

// Update applies the optional isActive flag and returns the member.
func (s *MemberService) Update(ctx context.Context, memberID, actorID string, isActive *bool) (domain.Member, error) {
	m, err := s.Get(ctx, memberID, actorID)
	if err != nil {
		return domain.Member{}, err
	}
	if isActive == nil || *isActive == m.IsActive {
		return m, nil
	}

	if err := s.setActive(ctx, m.ID, *isActive); err != nil {
		return domain.Member{}, err
	}
	slogx.FromContext(ctx).Info("member updated",
		slog.String("member_id", m.ID),
		slog.Bool("is_active", *isActive),
		slog.String("updated_by", actorID),
	)
	return s.Store.Members().GetMemberByID(ctx, m.ID)
}

// Remove deactivates a member.
func (s *MemberService) Remove(ctx context.Context, memberID, actorID string) error {
	m, err := s.Get(ctx, memberID, actorID)
	if err != nil {
		return err
	}
	if err := s.setActive(ctx, m.ID, false); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("member removed",
		slog.String("member_id", m.ID),
		slog.String("website_id", m.WebsiteID),
		slog.String("removed_by", actorID),
	)
	return nil
}

func (s *MemberService) setActive(ctx context.Context, id string, active bool) error {
	if err := s.Store.Members().SetMemberActive(ctx, id, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		slogx.FromContext(ctx).Error("failed to update member", slog.Any("error", err))
		return err
	}
	return nil
}
