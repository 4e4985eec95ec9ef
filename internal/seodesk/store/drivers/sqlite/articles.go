package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store/drivers/sqlite/gen"
)

type articlesRepo struct {
	q *gen.Queries
}

func (r *articlesRepo) CreateArticle(ctx context.Context, a domain.Article) error {
	created := a.CreatedAt
	if created.IsZero() {
		created = now()
	}
	secondary := a.SecondaryKeywordIDs
	if secondary == nil {
		secondary = []string{}
	}
	ids, err := json.Marshal(secondary)
	if err != nil {
		return err
	}
	status := a.Status
	if status == "" {
		status = domain.ArticleGenerating
	}
	err = r.q.CreateArticle(ctx, gen.CreateArticleParams{
		ID:                  a.ID,
		UserID:              a.UserID,
		WebsiteID:           mapStringNull(a.WebsiteID),
		PrimaryKeywordID:    a.PrimaryKeywordID,
		SecondaryKeywordIds: string(ids),
		Title:               a.Title,
		ContentBriefing:     a.ContentBriefing,
		ReferenceContent:    a.ReferenceContent,
		Status:              string(status),
		CreatedAt:           created.UTC(),
	})
	return mapConstraint(err)
}

func (r *articlesRepo) GetArticleByID(ctx context.Context, id string) (domain.Article, error) {
	row, err := r.q.GetArticleByID(ctx, id)
	if err != nil {
		return domain.Article{}, mapNotFound(err)
	}
	return mapArticle(row), nil
}

func (r *articlesRepo) GetArticleForUser(ctx context.Context, id, userID string) (domain.Article, error) {
	row, err := r.q.GetArticleForUser(ctx, gen.GetArticleForUserParams{ID: id, UserID: userID})
	if err != nil {
		return domain.Article{}, mapNotFound(err)
	}
	return mapArticle(row), nil
}

func (r *articlesRepo) GetArticleByKeyword(ctx context.Context, userID, keywordID string) (domain.Article, error) {
	row, err := r.q.GetArticleByKeyword(ctx, gen.GetArticleByKeywordParams{
		UserID:           userID,
		PrimaryKeywordID: keywordID,
	})
	if err != nil {
		return domain.Article{}, mapNotFound(err)
	}
	return mapArticle(row), nil
}

func (r *articlesRepo) ListArticlesByUser(ctx context.Context, userID string) ([]domain.Article, error) {
	rows, err := r.q.ListArticlesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapArticle(row))
	}
	return out, nil
}

func (r *articlesRepo) SaveGeneratedArticle(ctx context.Context, a domain.Article) error {
	n, err := r.q.SaveGeneratedArticle(ctx, gen.SaveGeneratedArticleParams{
		Content:          a.Content,
		ContentJson:      rawJSONNull(a.ContentJSON),
		PromptTokens:     int64(a.PromptTokens),
		CompletionTokens: int64(a.CompletionTokens),
		UpdatedAt:        now(),
		ID:               a.ID,
	})
	return expectRows(n, err, store.ErrPreconditionFailed)
}

func (r *articlesRepo) MarkArticleFailed(ctx context.Context, id, msg string) error {
	n, err := r.q.MarkArticleFailed(ctx, gen.MarkArticleFailedParams{
		ErrorMessage: msg,
		UpdatedAt:    now(),
		ID:           id,
	})
	return expectRows(n, err, store.ErrNotFound)
}

func (r *articlesRepo) UpdateArticle(ctx context.Context, a domain.Article) error {
	n, err := r.q.UpdateArticle(ctx, gen.UpdateArticleParams{
		Title:       a.Title,
		Content:     a.Content,
		ContentJson: rawJSONNull(a.ContentJSON),
		Status:      string(a.Status),
		UpdatedAt:   now(),
		ID:          a.ID,
		UserID:      a.UserID,
	})
	return expectRows(n, err, store.ErrNotFound)
}

func (r *articlesRepo) DeleteArticle(ctx context.Context, id, userID string) error {
	n, err := r.q.DeleteArticle(ctx, gen.DeleteArticleParams{ID: id, UserID: userID})
	return expectRows(n, err, store.ErrNotFound)
}

func rawJSONNull(raw json.RawMessage) sql.NullString {
	if len(raw) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}
