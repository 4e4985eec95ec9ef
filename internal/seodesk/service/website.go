package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/idx"
	"github.com/aussiebroadwan/seodesk/pkg/scrape"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// Scraper fetches and parses a website's landing page.
type Scraper interface {
	Scrape(ctx context.Context, rawURL string) (scrape.Page, error)
}

// OnboardingStatus summarises how far a user got through onboarding.
type OnboardingStatus struct {
	IsOnboarded   bool
	HasWebsite    bool
	WebsiteStatus domain.ScrapingStatus
	Website       *domain.Website
}

// WebsiteService registers websites, scrapes them and tracks onboarding.
type WebsiteService struct {
	Store   store.Store
	Scraper Scraper
}

// Submit registers a website for userID. The user's first website becomes
// the primary one.
func (s *WebsiteService) Submit(ctx context.Context, userID, rawURL string) (domain.Website, error) {
	log := slogx.FromContext(ctx)

	// 1. Normalise the URL.
	u, err := scrape.NormalizeURL(rawURL)
	if err != nil {
		log.Warn("rejected website url", slog.String("reason", err.Error()))
		return domain.Website{}, ErrInvalidURL
	}

	// 2. The first website is primary.
	n, err := s.Store.Websites().CountWebsitesByUser(ctx, userID)
	if err != nil {
		log.Error("failed to count websites", slog.Any("error", err))
		return domain.Website{}, err
	}

	now := time.Now().UTC()
	w := domain.Website{
		ID:             idx.NewAt(now).String(),
		UserID:         userID,
		URL:            u,
		ScrapingStatus: domain.ScrapingPending,
		IsPrimary:      n == 0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// 3. Persist.
	if err := s.Store.Websites().CreateWebsite(ctx, w); err != nil {
		log.Error("failed to create website", slog.Any("error", err))
		return domain.Website{}, err
	}

	log.Info("website submitted",
		slog.String("website_id", w.ID),
		slog.Bool("primary", w.IsPrimary),
	)
	return w, nil
}

// StartScraping scrapes the website synchronously. A failed scrape is
// recorded on the website and is not returned as an error.
func (s *WebsiteService) StartScraping(ctx context.Context, userID, websiteID string) (domain.Website, error) {
	log := slogx.FromContext(ctx).With(slog.String("website_id", websiteID))

	// 1. Only the owner may scrape.
	w, err := s.owned(ctx, userID, websiteID)
	if err != nil {
		return domain.Website{}, err
	}

	// 2. Mark processing.
	if err := s.Store.Websites().SetScrapingStatus(ctx, w.ID, domain.ScrapingProcessing, ""); err != nil {
		log.Error("failed to mark website processing", slog.Any("error", err))
		return domain.Website{}, err
	}

	// 3. Scrape and record the outcome.
	page, err := s.Scraper.Scrape(ctx, w.URL)
	if err != nil {
		log.Warn("website scrape failed", slog.Any("error", err))
		if err := s.Store.Websites().SetScrapingStatus(ctx, w.ID, domain.ScrapingFailed, err.Error()); err != nil {
			log.Error("failed to mark website failed", slog.Any("error", err))
			return domain.Website{}, err
		}
		return s.Store.Websites().GetWebsiteByID(ctx, w.ID)
	}

	scrapedAt := time.Now().UTC()
	w.Name = page.Title
	w.Description = page.Description
	w.ScrapedContent = page.Content
	w.ScrapedAt = &scrapedAt
	w.ScrapedMeta = &domain.WebsiteMeta{
		Title:    page.Title,
		Keywords: page.Keywords,
		Favicon:  page.Favicon,
		OGImage:  page.OGImage,
		Headings: page.Headings,
		Links:    page.Links,
	}
	if err := s.Store.Websites().SaveScrapeResult(ctx, w); err != nil {
		log.Error("failed to save scrape result", slog.Any("error", err))
		return domain.Website{}, err
	}

	log.Info("website scraped",
		slog.Int("headings", len(page.Headings)),
		slog.Int("links", len(page.Links)),
	)
	return s.Store.Websites().GetWebsiteByID(ctx, w.ID)
}

// GetScrapingStatus returns the website with its current scraping state.
func (s *WebsiteService) GetScrapingStatus(ctx context.Context, userID, websiteID string) (domain.Website, error) {
	return s.owned(ctx, userID, websiteID)
}

// List returns the user's websites, primary first.
func (s *WebsiteService) List(ctx context.Context, userID string) ([]domain.Website, error) {
	return s.Store.Websites().ListWebsitesByUser(ctx, userID)
}

// CompleteOnboarding marks the user onboarded once a website was scraped.
func (s *WebsiteService) CompleteOnboarding(ctx context.Context, userID string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	ok, err := s.Store.Websites().HasCompletedWebsite(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		log.Warn("onboarding completed without a scraped website")
		return domain.User{}, ErrScrapingIncomplete
	}

	if err := s.Store.Users().MarkOnboarded(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	log.Info("onboarding completed", slog.String("user_id", userID))
	return s.Store.Users().GetUserByID(ctx, userID)
}

// GetOnboardingStatus reports onboarding progress using the primary website,
// or the first one when none is primary.
func (s *WebsiteService) GetOnboardingStatus(ctx context.Context, userID string) (OnboardingStatus, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return OnboardingStatus{}, ErrUserNotFound
		}
		return OnboardingStatus{}, err
	}

	sites, err := s.Store.Websites().ListWebsitesByUser(ctx, userID)
	if err != nil {
		return OnboardingStatus{}, err
	}

	st := OnboardingStatus{IsOnboarded: u.IsOnboarded, HasWebsite: len(sites) > 0}
	if len(sites) == 0 {
		return st, nil
	}
	pick := sites[0]
	for _, w := range sites {
		if w.IsPrimary {
			pick = w
			break
		}
	}
	st.Website = &pick
	st.WebsiteStatus = pick.ScrapingStatus
	return st, nil
}

func (s *WebsiteService) owned(ctx context.Context, userID, websiteID string) (domain.Website, error) {
	return (&Access{Store: s.Store}).RequireOwner(ctx, userID, websiteID)
}
