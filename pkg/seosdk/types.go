package seosdk

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Common Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a machine readable code (e.g., "not_found", "conflict")
	Error string `json:"error"`

	// ErrorDescription is the human readable message
	ErrorDescription string `json:"error_description,omitempty"`
}

// MessageResponse acknowledges an action that has no other result.
type MessageResponse struct {
	Message string `json:"message"`
}

// Page is one slice of a newest-first listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// CountResponse carries a single count.
type CountResponse struct {
	Count int `json:"count"`
}

// ============================================================================
// Users and Members
// ============================================================================

// User is a directory entry for someone who has signed in.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	IsOnboarded bool      `json:"isOnboarded"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Member is a (user, website) membership.
type Member struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	WebsiteID string     `json:"websiteId"`
	IsActive  bool       `json:"isActive"`
	JoinedAt  time.Time  `json:"joinedAt"`
	InvitedAt *time.Time `json:"invitedAt,omitempty"`
	InvitedBy string     `json:"invitedBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	User      *User      `json:"user,omitempty"`
}

// UpdateMemberRequest toggles a membership. Nil fields are left unchanged.
type UpdateMemberRequest struct {
	IsActive *bool `json:"isActive,omitempty"`
}

// ============================================================================
// Invites
// ============================================================================

// Invite statuses.
const (
	InviteStatusPending  = "PENDING"
	InviteStatusAccepted = "ACCEPTED"
	InviteStatusRejected = "REJECTED"
	InviteStatusExpired  = "EXPIRED"
	InviteStatusRevoked  = "REVOKED"
)

// Invite is an offer for an e-mail address to join a website.
type Invite struct {
	ID              string     `json:"id"`
	WebsiteID       string     `json:"websiteId"`
	Email           string     `json:"email"`
	Status          string     `json:"status"`
	InvitedBy       string     `json:"invitedBy,omitempty"`
	Message         string     `json:"message,omitempty"`
	ExpiresAt       time.Time  `json:"expiresAt"`
	AcceptedAt      *time.Time `json:"acceptedAt,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	RevokedAt       *time.Time `json:"revokedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`

	// Token is only present in issue and resend responses.
	Token string `json:"token,omitempty"`
}

// CreateInviteRequest invites one e-mail to the website in the path.
type CreateInviteRequest struct {
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}

// BulkInviteRequest invites one e-mail to several websites.
type BulkInviteRequest struct {
	Email      string   `json:"email"`
	WebsiteIDs []string `json:"websiteIds"`
	Message    string   `json:"message,omitempty"`
}

// AcceptInviteRequest redeems an invite token.
type AcceptInviteRequest struct {
	Token string `json:"token"`
}

// AcceptInviteResponse is returned when an invite was accepted.
type AcceptInviteResponse struct {
	Member  Member `json:"member"`
	Message string `json:"message"`
}

// RejectInviteRequest declines an invite.
type RejectInviteRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ============================================================================
// Onboarding
// ============================================================================

// Website scraping statuses.
const (
	ScrapingPending    = "pending"
	ScrapingProcessing = "processing"
	ScrapingCompleted  = "completed"
	ScrapingFailed     = "failed"
)

// WebsiteMeta is the structured part of a scrape.
type WebsiteMeta struct {
	Title    string   `json:"title,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Favicon  string   `json:"favicon,omitempty"`
	OGImage  string   `json:"ogImage,omitempty"`
	Headings []string `json:"headings,omitempty"`
	Links    []string `json:"links,omitempty"`
}

// Website is a site onboarded by a user.
type Website struct {
	ID             string       `json:"id"`
	UserID         string       `json:"userId"`
	URL            string       `json:"url"`
	Name           string       `json:"name,omitempty"`
	Description    string       `json:"description,omitempty"`
	ScrapedContent string       `json:"scrapedContent,omitempty"`
	ScrapedMeta    *WebsiteMeta `json:"scrapedMeta,omitempty"`
	ScrapingStatus string       `json:"scrapingStatus"`
	ScrapingError  string       `json:"scrapingError,omitempty"`
	ScrapedAt      *time.Time   `json:"scrapedAt,omitempty"`
	IsPrimary      bool         `json:"isPrimary"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// SubmitWebsiteRequest registers a website for onboarding.
type SubmitWebsiteRequest struct {
	WebsiteURL string `json:"websiteUrl"`
}

// OnboardingStatus summarises where the caller is in onboarding.
type OnboardingStatus struct {
	IsOnboarded   bool     `json:"isOnboarded"`
	HasWebsite    bool     `json:"hasWebsite"`
	WebsiteStatus string   `json:"websiteStatus,omitempty"`
	Website       *Website `json:"website,omitempty"`
}

// ============================================================================
// Keywords
// ============================================================================

// KeywordAnalysis is the model's assessment of a keyword.
type KeywordAnalysis struct {
	Competition      string `json:"competition"`
	CompetitionScore int    `json:"competitionScore"`
	Volume           int    `json:"volume"`
	Difficulty       string `json:"difficulty"`
	Trend            string `json:"trend"`
	RecommendedTitle string `json:"recommendedTitle"`
}

// Keyword is a tracked search term.
type Keyword struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	WebsiteID        string           `json:"websiteId,omitempty"`
	Keyword          string           `json:"keyword"`
	Competition      string           `json:"competition"`
	Volume           int              `json:"volume"`
	RecommendedTitle string           `json:"recommendedTitle,omitempty"`
	AIAnalysis       *KeywordAnalysis `json:"aiAnalysis,omitempty"`
	IsAnalyzed       bool             `json:"isAnalyzed"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// KeywordItem is one keyword in a create request. Competition and volume
// are optional; supplying both skips the analysis task.
type KeywordItem struct {
	Keyword     string  `json:"keyword"`
	Competition *string `json:"competition,omitempty"`
	Volume      *int    `json:"volume,omitempty"`
}

// CreateKeywordsRequest adds keywords for the caller.
type CreateKeywordsRequest struct {
	WebsiteID string        `json:"websiteId,omitempty"`
	Keywords  []KeywordItem `json:"keywords"`
}

// DeleteKeywordsRequest removes several keywords.
type DeleteKeywordsRequest struct {
	KeywordIDs []string `json:"keywordIds"`
}

// ============================================================================
// Articles
// ============================================================================

// Article statuses.
const (
	ArticleGenerating = "GENERATING"
	ArticleDraft      = "DRAFT"
	ArticlePublished  = "PUBLISHED"
	ArticleFailed     = "FAILED"
)

// Article is a generated piece of content.
type Article struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"userId"`
	WebsiteID           string          `json:"websiteId,omitempty"`
	PrimaryKeywordID    string          `json:"primaryKeywordId"`
	SecondaryKeywordIDs []string        `json:"secondaryKeywordIds"`
	Title               string          `json:"title"`
	ContentBriefing     string          `json:"contentBriefing,omitempty"`
	ReferenceContent    string          `json:"referenceContent,omitempty"`
	Content             string          `json:"content,omitempty"`
	ContentJSON         json.RawMessage `json:"contentJson,omitempty" swaggertype:"object"`
	Status              string          `json:"status"`
	ErrorMessage        string          `json:"errorMessage,omitempty"`
	PromptTokens        int             `json:"promptTokens"`
	CompletionTokens    int             `json:"completionTokens"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// CreateArticleRequest starts generation of an article.
type CreateArticleRequest struct {
	Title               string   `json:"title"`
	PrimaryKeywordID    string   `json:"primaryKeywordId"`
	SecondaryKeywordIDs []string `json:"secondaryKeywordIds,omitempty"`
	ContentBriefing     string   `json:"contentBriefing"`
	ReferenceContent    string   `json:"referenceContent,omitempty"`
	WebsiteID           string   `json:"websiteId,omitempty"`
}

// UpdateArticleRequest edits an article. Nil fields are left unchanged.
type UpdateArticleRequest struct {
	Title       *string         `json:"title,omitempty"`
	Content     *string         `json:"content,omitempty"`
	ContentJSON json.RawMessage `json:"contentJson,omitempty" swaggertype:"object"`
	Status      *string         `json:"status,omitempty"`
}

// RegenerateTitleRequest asks for a new title suggestion.
type RegenerateTitleRequest struct {
	PrimaryKeywordID string `json:"primaryKeywordId"`
	Context          string `json:"context,omitempty"`
}

// TitleResponse carries a suggested title.
type TitleResponse struct {
	Title string `json:"title"`
}

// ============================================================================
// Health and Development Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	// Status is "ok" or "degraded"
	Status string `json:"status"`

	// Uptime is the service uptime as a Go duration string
	Uptime string `json:"uptime,omitempty"`

	// Version is the service build version
	Version string `json:"version,omitempty"`

	// Checks holds per-dependency results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Keys     string `json:"keys"`
	Jobs     string `json:"jobs"`
}

// DevTokenRequest asks the development signer for an access token.
type DevTokenRequest struct {
	Subject    string   `json:"sub"`
	Email      string   `json:"email"`
	GivenName  string   `json:"given_name,omitempty"`
	FamilyName string   `json:"family_name,omitempty"`
	Scopes     []string `json:"scopes,omitempty"`
}

// TokenResponse carries a bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
