package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrPreconditionFailed is returned by conditional updates that matched
	// no row, e.g. an invite that is no longer PENDING.
	ErrPreconditionFailed = errors.New("store: precondition failed")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable, and so a
// Tx-scoped Store can be handed to code that must not start its own
// transaction.
type Store interface {
	Users() Users
	Websites() Websites
	Invites() Invites
	Members() Members
	Keywords() Keywords
	Articles() Articles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. fn must use the
	// repositories of the Tx it is given.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// UpsertUser inserts the user or refreshes e-mail and names of an
	// existing row with the same id, returning the stored row.
	UpsertUser(ctx context.Context, u domain.User) (domain.User, error)

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the normalised (lower-case) e-mail.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// MarkOnboarded sets is_onboarded and bumps updated_at.
	MarkOnboarded(ctx context.Context, userID string) error
}

type Websites interface {
	CreateWebsite(ctx context.Context, w domain.Website) error
	GetWebsiteByID(ctx context.Context, id string) (domain.Website, error)

	// ListWebsitesByUser returns the primary website first, then newest first.
	ListWebsitesByUser(ctx context.Context, userID string) ([]domain.Website, error)

	CountWebsitesByUser(ctx context.Context, userID string) (int, error)

	// SetScrapingStatus updates status and error message only.
	SetScrapingStatus(ctx context.Context, id string, status domain.ScrapingStatus, scrapeErr string) error

	// SaveScrapeResult stores a completed scrape and sets status completed.
	SaveScrapeResult(ctx context.Context, w domain.Website) error

	// HasCompletedWebsite reports whether the user owns a completed website.
	HasCompletedWebsite(ctx context.Context, userID string) (bool, error)
}

type Invites interface {
	// CreateInvite inserts a PENDING invite. A second PENDING invite for the
	// same (email, website) returns ErrAlreadyExists.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	GetInviteByID(ctx context.Context, id string) (domain.Invite, error)
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// GetLatestInvite returns the most recent invite for (email, website).
	GetLatestInvite(ctx context.Context, email, websiteID string) (domain.Invite, error)

	// ListInvitesByWebsite returns newest first. An empty status matches all.
	ListInvitesByWebsite(ctx context.Context, websiteID string, status domain.InviteStatus, limit, offset int) ([]domain.Invite, error)
	CountInvitesByWebsite(ctx context.Context, websiteID string, status domain.InviteStatus) (int, error)

	// The Mark* methods only touch PENDING invites and return
	// ErrPreconditionFailed when the invite is not PENDING any more.
	MarkInviteAccepted(ctx context.Context, id, memberID string, at time.Time) error
	MarkInviteRejected(ctx context.Context, id, reason string, at time.Time) error
	MarkInviteRevoked(ctx context.Context, id string, at time.Time) error
	MarkInviteExpired(ctx context.Context, id string, at time.Time) error

	// RotateInviteToken replaces the token fingerprint and expiry of a
	// PENDING invite.
	RotateInviteToken(ctx context.Context, id, tokenHash string, expiresAt, at time.Time) error

	// DeleteTerminalInvitesBefore removes non-PENDING invites last updated
	// before cutoff and returns how many were removed.
	DeleteTerminalInvitesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Members interface {
	// CreateMember returns ErrAlreadyExists when (user, website) already has a row.
	CreateMember(ctx context.Context, m domain.Member) error

	// GetMemberByID includes the member's user.
	GetMemberByID(ctx context.Context, id string) (domain.Member, error)
	GetMemberByUserAndWebsite(ctx context.Context, userID, websiteID string) (domain.Member, error)

	// ListMembersByWebsite returns newest first with users attached.
	ListMembersByWebsite(ctx context.Context, websiteID string, limit, offset int) ([]domain.Member, error)
	CountMembersByWebsite(ctx context.Context, websiteID string) (int, error)
	CountActiveMembersByWebsite(ctx context.Context, websiteID string) (int, error)

	SetMemberActive(ctx context.Context, id string, active bool) error
}

type Keywords interface {
	// CreateKeyword returns ErrAlreadyExists when the user already owns it.
	CreateKeyword(ctx context.Context, k domain.Keyword) error

	GetKeywordByID(ctx context.Context, id string) (domain.Keyword, error)
	GetKeywordForUser(ctx context.Context, id, userID string) (domain.Keyword, error)

	// ListKeywordTextsByUser returns every keyword string the user owns.
	ListKeywordTextsByUser(ctx context.Context, userID string) ([]string, error)

	// ListKeywordsByUser returns newest first.
	ListKeywordsByUser(ctx context.Context, userID string) ([]domain.Keyword, error)

	// SaveKeywordAnalysis stores the analysis and marks the keyword analysed.
	SaveKeywordAnalysis(ctx context.Context, id string, a domain.KeywordAnalysis) error

	DeleteKeyword(ctx context.Context, id, userID string) error
}

type Articles interface {
	CreateArticle(ctx context.Context, a domain.Article) error
	GetArticleByID(ctx context.Context, id string) (domain.Article, error)
	GetArticleForUser(ctx context.Context, id, userID string) (domain.Article, error)
	GetArticleByKeyword(ctx context.Context, userID, keywordID string) (domain.Article, error)

	// ListArticlesByUser returns newest first.
	ListArticlesByUser(ctx context.Context, userID string) ([]domain.Article, error)

	// SaveGeneratedArticle stores generated content and sets status DRAFT.
	// Only GENERATING articles are updated.
	SaveGeneratedArticle(ctx context.Context, a domain.Article) error

	// MarkArticleFailed sets status FAILED with msg.
	MarkArticleFailed(ctx context.Context, id, msg string) error

	// UpdateArticle stores editable fields: title, content, content JSON, status.
	UpdateArticle(ctx context.Context, a domain.Article) error

	DeleteArticle(ctx context.Context, id, userID string) error
}
