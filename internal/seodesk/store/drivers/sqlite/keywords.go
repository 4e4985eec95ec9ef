package sqlite

import (
	"context"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store/drivers/sqlite/gen"
)

type keywordsRepo struct {
	q *gen.Queries
}

func (r *keywordsRepo) CreateKeyword(ctx context.Context, k domain.Keyword) error {
	created := k.CreatedAt
	if created.IsZero() {
		created = now()
	}
	competition := k.Competition
	if competition == "" {
		competition = domain.CompetitionMedium
	}
	err := r.q.CreateKeyword(ctx, gen.CreateKeywordParams{
		ID:               k.ID,
		UserID:           k.UserID,
		WebsiteID:        mapStringNull(k.WebsiteID),
		Keyword:          k.Keyword,
		Competition:      string(competition),
		Volume:           int64(k.Volume),
		RecommendedTitle: k.RecommendedTitle,
		IsAnalyzed:       k.IsAnalyzed,
		CreatedAt:        created.UTC(),
	})
	return mapConstraint(err)
}

func (r *keywordsRepo) GetKeywordByID(ctx context.Context, id string) (domain.Keyword, error) {
	row, err := r.q.GetKeywordByID(ctx, id)
	if err != nil {
		return domain.Keyword{}, mapNotFound(err)
	}
	return mapKeyword(row), nil
}

func (r *keywordsRepo) GetKeywordForUser(ctx context.Context, id, userID string) (domain.Keyword, error) {
	row, err := r.q.GetKeywordForUser(ctx, gen.GetKeywordForUserParams{ID: id, UserID: userID})
	if err != nil {
		return domain.Keyword{}, mapNotFound(err)
	}
	return mapKeyword(row), nil
}

func (r *keywordsRepo) ListKeywordTextsByUser(ctx context.Context, userID string) ([]string, error) {
	return r.q.ListKeywordTextsByUser(ctx, userID)
}

func (r *keywordsRepo) ListKeywordsByUser(ctx context.Context, userID string) ([]domain.Keyword, error) {
	rows, err := r.q.ListKeywordsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Keyword, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapKeyword(row))
	}
	return out, nil
}

func (r *keywordsRepo) SaveKeywordAnalysis(ctx context.Context, id string, a domain.KeywordAnalysis) error {
	raw, err := mapJSONNull(a)
	if err != nil {
		return err
	}
	competition := a.Competition
	if _, ok := domain.ParseCompetition(string(competition)); !ok {
		competition = domain.CompetitionMedium
	}
	n, err := r.q.SaveKeywordAnalysis(ctx, gen.SaveKeywordAnalysisParams{
		Competition:      string(competition),
		Volume:           int64(a.Volume),
		RecommendedTitle: a.RecommendedTitle,
		AiAnalysis:       raw,
		UpdatedAt:        now(),
		ID:               id,
	})
	return expectRows(n, err, store.ErrNotFound)
}

func (r *keywordsRepo) DeleteKeyword(ctx context.Context, id, userID string) error {
	n, err := r.q.DeleteKeyword(ctx, gen.DeleteKeywordParams{ID: id, UserID: userID})
	return expectRows(n, err, store.ErrNotFound)
}
