package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store/drivers/sqlite/gen"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One connection: pragmas are per connection and an in-memory database
	// only exists on the connection that created it.
	db.SetMaxOpenConns(1)

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(context.Background(), `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewStoreFromDB(db, dsn), nil
}

// NewStoreFromDB wraps an already opened database without touching its
// settings.
func NewStoreFromDB(db *sql.DB, dsn string) *Store {
	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users       { return &usersRepo{q: s.q} }
func (s *Store) Websites() store.Websites { return &websitesRepo{q: s.q} }
func (s *Store) Invites() store.Invites   { return &invitesRepo{q: s.q} }
func (s *Store) Members() store.Members   { return &membersRepo{q: s.q} }
func (s *Store) Keywords() store.Keywords { return &keywordsRepo{q: s.q} }
func (s *Store) Articles() store.Articles { return &articlesRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns unique and primary key violations into
// store.ErrAlreadyExists.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
		}
		return err
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	}
	return err
}

// expectRows maps a conditional update that touched nothing to notMatched.
func expectRows(n int64, err error, notMatched error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return notMatched
	}
	return nil
}

func now() time.Time { return time.Now().UTC() }

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// mapJSONNull marshals v into a nullable column; nil values stay NULL.
func mapJSONNull(v any) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:          row.ID,
		Email:       row.Email,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		AvatarURL:   row.AvatarUrl,
		IsOnboarded: row.IsOnboarded,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func mapWebsite(row gen.Website) domain.Website {
	w := domain.Website{
		ID:             row.ID,
		UserID:         row.UserID,
		URL:            row.Url,
		Name:           row.Name,
		Description:    row.Description,
		ScrapedContent: row.ScrapedContent,
		ScrapingStatus: domain.ScrapingStatus(row.ScrapingStatus),
		ScrapingError:  row.ScrapingError,
		ScrapedAt:      mapNullTimePtr(row.ScrapedAt),
		IsPrimary:      row.IsPrimary,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.ScrapedMeta.Valid {
		var meta domain.WebsiteMeta
		if err := json.Unmarshal([]byte(row.ScrapedMeta.String), &meta); err == nil {
			w.ScrapedMeta = &meta
		}
	}
	return w
}

func mapInvite(row gen.MemberInvite) domain.Invite {
	return domain.Invite{
		ID:              row.ID,
		WebsiteID:       row.WebsiteID,
		Email:           row.Email,
		TokenHash:       row.TokenHash,
		Status:          domain.InviteStatus(row.Status),
		InvitedBy:       mapNullString(row.InvitedBy),
		Message:         row.Message,
		MemberID:        mapNullString(row.MemberID),
		ExpiresAt:       row.ExpiresAt,
		AcceptedAt:      mapNullTimePtr(row.AcceptedAt),
		RejectedAt:      mapNullTimePtr(row.RejectedAt),
		RevokedAt:       mapNullTimePtr(row.RevokedAt),
		RejectionReason: row.RejectionReason,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func mapMember(row gen.Member) domain.Member {
	return domain.Member{
		ID:        row.ID,
		UserID:    row.UserID,
		WebsiteID: row.WebsiteID,
		IsActive:  row.IsActive,
		JoinedAt:  row.JoinedAt,
		InvitedAt: mapNullTimePtr(row.InvitedAt),
		InvitedBy: mapNullString(row.InvitedBy),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapMemberWithUser(row gen.MemberWithUserRow) domain.Member {
	m := mapMember(row.Member)
	u := mapUser(row.User)
	m.User = &u
	return m
}

func mapKeyword(row gen.Keyword) domain.Keyword {
	k := domain.Keyword{
		ID:               row.ID,
		UserID:           row.UserID,
		WebsiteID:        mapNullString(row.WebsiteID),
		Keyword:          row.Keyword,
		Competition:      domain.Competition(row.Competition),
		Volume:           int(row.Volume),
		RecommendedTitle: row.RecommendedTitle,
		IsAnalyzed:       row.IsAnalyzed,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if row.AiAnalysis.Valid {
		var a domain.KeywordAnalysis
		if err := json.Unmarshal([]byte(row.AiAnalysis.String), &a); err == nil {
			k.Analysis = &a
		}
	}
	return k
}

func mapArticle(row gen.Article) domain.Article {
	a := domain.Article{
		ID:               row.ID,
		UserID:           row.UserID,
		WebsiteID:        mapNullString(row.WebsiteID),
		PrimaryKeywordID: row.PrimaryKeywordID,
		Title:            row.Title,
		ContentBriefing:  row.ContentBriefing,
		ReferenceContent: row.ReferenceContent,
		Content:          row.Content,
		Status:           domain.ArticleStatus(row.Status),
		ErrorMessage:     row.ErrorMessage,
		PromptTokens:     int(row.PromptTokens),
		CompletionTokens: int(row.CompletionTokens),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(row.SecondaryKeywordIds), &a.SecondaryKeywordIDs); err != nil {
		a.SecondaryKeywordIDs = nil
	}
	if row.ContentJson.Valid {
		a.ContentJSON = json.RawMessage(row.ContentJson.String)
	}
	return a
}
