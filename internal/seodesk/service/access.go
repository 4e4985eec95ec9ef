package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// Access decides who may administer a website's invites and members: the
// owner and anyone holding an active membership.
type Access struct {
	Store store.Store
}

// RequireWebsite returns the website when userID may administer it.
func (a *Access) RequireWebsite(ctx context.Context, userID, websiteID string) (domain.Website, error) {
	log := slogx.FromContext(ctx)

	site, err := a.Store.Websites().GetWebsiteByID(ctx, websiteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Website{}, ErrWebsiteNotFound
		}
		log.Error("failed to fetch website", slog.String("website_id", websiteID), slog.Any("error", err))
		return domain.Website{}, err
	}

	if site.UserID == userID {
		return site, nil
	}

	m, err := a.Store.Members().GetMemberByUserAndWebsite(ctx, userID, websiteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("website access denied",
				slog.String("website_id", websiteID),
				slog.String("user_id", userID),
			)
			return domain.Website{}, ErrForbidden
		}
		log.Error("failed to fetch membership", slog.Any("error", err))
		return domain.Website{}, err
	}
	if !m.IsActive {
		log.Warn("website access denied for inactive member",
			slog.String("website_id", websiteID),
			slog.String("member_id", m.ID),
		)
		return domain.Website{}, ErrForbidden
	}

	return site, nil
}

// RequireOwner returns the website when userID owns it. Other users get
// ErrWebsiteNotFound so ids of foreign websites are not disclosed.
func (a *Access) RequireOwner(ctx context.Context, userID, websiteID string) (domain.Website, error) {
	site, err := a.Store.Websites().GetWebsiteByID(ctx, websiteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Website{}, ErrWebsiteNotFound
		}
		return domain.Website{}, err
	}
	if site.UserID != userID {
		return domain.Website{}, ErrWebsiteNotFound
	}
	return site, nil
}
