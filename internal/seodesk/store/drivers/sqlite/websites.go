package sqlite

import (
	"context"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store/drivers/sqlite/gen"
)

type websitesRepo struct {
	q *gen.Queries
}

func (r *websitesRepo) CreateWebsite(ctx context.Context, w domain.Website) error {
	created := w.CreatedAt
	if created.IsZero() {
		created = now()
	}
	status := w.ScrapingStatus
	if status == "" {
		status = domain.ScrapingPending
	}
	err := r.q.CreateWebsite(ctx, gen.CreateWebsiteParams{
		ID:             w.ID,
		UserID:         w.UserID,
		Url:            w.URL,
		Name:           w.Name,
		Description:    w.Description,
		ScrapingStatus: string(status),
		IsPrimary:      w.IsPrimary,
		CreatedAt:      created.UTC(),
	})
	return mapConstraint(err)
}

func (r *websitesRepo) GetWebsiteByID(ctx context.Context, id string) (domain.Website, error) {
	row, err := r.q.GetWebsiteByID(ctx, id)
	if err != nil {
		return domain.Website{}, mapNotFound(err)
	}
	return mapWebsite(row), nil
}

func (r *websitesRepo) ListWebsitesByUser(ctx context.Context, userID string) ([]domain.Website, error) {
	rows, err := r.q.ListWebsitesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Website, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapWebsite(row))
	}
	return out, nil
}

func (r *websitesRepo) CountWebsitesByUser(ctx context.Context, userID string) (int, error) {
	n, err := r.q.CountWebsitesByUser(ctx, userID)
	return int(n), err
}

func (r *websitesRepo) SetScrapingStatus(
	ctx context.Context,
	id string,
	status domain.ScrapingStatus,
	scrapeErr string,
) error {
	n, err := r.q.SetScrapingStatus(ctx, gen.SetScrapingStatusParams{
		ScrapingStatus: string(status),
		ScrapingError:  scrapeErr,
		UpdatedAt:      now(),
		ID:             id,
	})
	return expectRows(n, err, store.ErrNotFound)
}

func (r *websitesRepo) SaveScrapeResult(ctx context.Context, w domain.Website) error {
	var meta any
	if w.ScrapedMeta != nil {
		meta = w.ScrapedMeta
	}
	metaJSON, err := mapJSONNull(meta)
	if err != nil {
		return err
	}
	scrapedAt := now()
	if w.ScrapedAt != nil {
		scrapedAt = w.ScrapedAt.UTC()
	}
	n, err := r.q.SaveScrapeResult(ctx, gen.SaveScrapeResultParams{
		Name:           w.Name,
		Description:    w.Description,
		ScrapedContent: w.ScrapedContent,
		ScrapedMeta:    metaJSON,
		ScrapedAt:      scrapedAt,
		ID:             w.ID,
	})
	return expectRows(n, err, store.ErrNotFound)
}

func (r *websitesRepo) HasCompletedWebsite(ctx context.Context, userID string) (bool, error) {
	return r.q.HasCompletedWebsite(ctx, userID)
}
