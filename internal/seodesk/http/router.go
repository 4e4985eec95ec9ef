package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/jobs"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/service"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/httpx"
	"github.com/aussiebroadwan/seodesk/pkg/jwtx"
	"github.com/aussiebroadwan/seodesk/pkg/metrics"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"

	_ "github.com/aussiebroadwan/seodesk/api/seodesk" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Scopes checked by the API.
const (
	ScopeSEORead      = "seo:read"
	ScopeSEOWrite     = "seo:write"
	ScopeMembersRead  = "members:read"
	ScopeMembersWrite = "members:write"
)

// RateLimits groups the limiter profiles used by the routes.
type RateLimits struct {
	Strict   httpx.RateLimitConfig
	Moderate httpx.RateLimitConfig
	Lenient  httpx.RateLimitConfig
	Public   httpx.RateLimitConfig
}

// DefaultRateLimits returns the httpx profiles with RATELIMIT_* overrides.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Strict:   httpx.RateLimitFromEnv(httpx.StrictLimit),
		Moderate: httpx.RateLimitFromEnv(httpx.ModerateLimit),
		Lenient:  httpx.RateLimitFromEnv(httpx.LenientLimit),
		Public:   httpx.RateLimitFromEnv(httpx.PublicLimit),
	}
}

// DevTokens mints access tokens locally. It is only set outside production.
type DevTokens struct {
	Signer   jwtx.Signer
	Issuer   string
	Audience []string
	TTL      time.Duration
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	jobs  jobs.Queue

	// Limits defaults to DefaultRateLimits.
	Limits RateLimits
	// FrontendURL is where the public accept link redirects to.
	FrontendURL string
	// Dev is optional; when set the dev token and JWKS routes are mounted.
	Dev *DevTokens

	UserService    *service.UserService
	InviteService  *service.InviteService
	MemberService  *service.MemberService
	WebsiteService *service.WebsiteService
	KeywordService *service.KeywordService
	ArticleService *service.ArticleService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	queue jobs.Queue,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		jobs:         queue,
		logger:       logger,
		Limits:       DefaultRateLimits(),
		FrontendURL:  service.DefaultFrontendURL,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvites()
	r.registerMembers()
	r.registerOnboarding()
	r.registerKeywords()
	r.registerArticles()
	r.registerSystem()
	r.registerDev()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			SEODesk API
//	@version		0.1.0
//	@description	Multi-tenant SEO platform: website onboarding, keyword research, AI article generation and team membership.
//	@description
//	@description				Access tokens are issued by the identity provider and verified against its JWKS.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/seodesk
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Metrics wrap the mux directly so the matched pattern is visible.
	httpx.Chain(metrics.InstrumentHandler(r.Mux), r.middlewares...).ServeHTTP(w, req)
}

// secured authenticates the caller, mirrors them into the user directory
// and enforces scope and rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig, scopes ...string) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/aud/exp)
		httpx.RequireAnyScope(scopes...),  // enforce scopes
		r.syncUser,                        // upsert the caller
		httpx.RateLimitByUser(limit),
	)
}

// public applies a per-IP rate limit only.
func public(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h, httpx.RateLimitByIP(limit))
}

func (r *Router) registerInvites() {
	h := &InviteHandler{
		InviteService: r.InviteService,
		FrontendURL:   r.FrontendURL,
	}
	lim := r.Limits

	// Issuing and resending send e-mail - moderate rate limit by user
	r.Mux.Handle("POST /v1/members/invite/websites/{websiteId}",
		r.secured(http.HandlerFunc(h.HandleCreate), lim.Moderate, ScopeMembersWrite))
	r.Mux.Handle("POST /v1/members/invite/bulk",
		r.secured(http.HandlerFunc(h.HandleBulk), lim.Moderate, ScopeMembersWrite))
	r.Mux.Handle("DELETE /v1/members/invite/{inviteId}/revoke",
		r.secured(http.HandlerFunc(h.HandleRevoke), lim.Moderate, ScopeMembersWrite))

	r.Mux.Handle("GET /v1/members/invites/website/{websiteId}",
		r.secured(http.HandlerFunc(h.HandleList), lim.Lenient, ScopeMembersRead))

	// Token endpoints are public capabilities - strict rate limit by IP
	r.Mux.Handle("GET /v1/members/invite/{token}",
		public(http.HandlerFunc(h.HandleGetByToken), lim.Strict))
	r.Mux.Handle("GET /v1/members/invite/accept/{token}",
		public(http.HandlerFunc(h.HandleAcceptLink), lim.Strict))
	r.Mux.Handle("POST /v1/members/invite/accept",
		public(http.HandlerFunc(h.HandleAccept), lim.Strict))

	// Separate reject and resend patterns would conflict with
	// "POST .../invite/websites/{websiteId}" (both match
	// .../invite/websites/reject), so they share one pattern and are
	// dispatched on the last segment.
	r.Mux.Handle("POST /v1/members/invite/{ref}/{action}", inviteActions(
		public(http.HandlerFunc(h.HandleReject), lim.Strict),
		r.secured(http.HandlerFunc(h.HandleResend), lim.Moderate, ScopeMembersWrite),
	))
}

// inviteActions routes POST /v1/members/invite/{ref}/{action}: ref is the
// token for "reject" and the invite id for "resend".
func inviteActions(reject, resend http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ref := req.PathValue("ref")
		switch req.PathValue("action") {
		case "reject":
			req.SetPathValue("token", ref)
			reject.ServeHTTP(w, req)
		case "resend":
			req.SetPathValue("inviteId", ref)
			resend.ServeHTTP(w, req)
		default:
			http.NotFound(w, req)
		}
	})
}

func (r *Router) registerMembers() {
	h := &MemberHandler{MemberService: r.MemberService}
	lim := r.Limits

	r.Mux.Handle("GET /v1/members/website/{websiteId}",
		r.secured(http.HandlerFunc(h.HandleList), lim.Lenient, ScopeMembersRead))
	r.Mux.Handle("GET /v1/members/count/website/{websiteId}",
		r.secured(http.HandlerFunc(h.HandleCount), lim.Lenient, ScopeMembersRead))
	r.Mux.Handle("GET /v1/members/{memberId}",
		r.secured(http.HandlerFunc(h.HandleGet), lim.Lenient, ScopeMembersRead))
	r.Mux.Handle("PATCH /v1/members/{memberId}",
		r.secured(http.HandlerFunc(h.HandleUpdate), lim.Moderate, ScopeMembersWrite))
	r.Mux.Handle("DELETE /v1/members/{memberId}",
		r.secured(http.HandlerFunc(h.HandleRemove), lim.Moderate, ScopeMembersWrite))
}

func (r *Router) registerOnboarding() {
	h := &OnboardingHandler{WebsiteService: r.WebsiteService}
	lim := r.Limits

	r.Mux.Handle("GET /v1/onboarding/status",
		r.secured(http.HandlerFunc(h.HandleStatus), lim.Lenient, ScopeSEORead))
	r.Mux.Handle("POST /v1/onboarding/website",
		r.secured(http.HandlerFunc(h.HandleSubmit), lim.Moderate, ScopeSEOWrite))
	// Scraping fetches a third-party site - strict rate limit by user
	r.Mux.Handle("POST /v1/onboarding/website/{websiteId}/scrape",
		r.secured(http.HandlerFunc(h.HandleScrape), lim.Strict, ScopeSEOWrite))
	r.Mux.Handle("GET /v1/onboarding/website/{websiteId}/status",
		r.secured(http.HandlerFunc(h.HandleScrapingStatus), lim.Lenient, ScopeSEORead))
	r.Mux.Handle("GET /v1/onboarding/websites",
		r.secured(http.HandlerFunc(h.HandleList), lim.Lenient, ScopeSEORead))
	r.Mux.Handle("POST /v1/onboarding/complete",
		r.secured(http.HandlerFunc(h.HandleComplete), lim.Moderate, ScopeSEOWrite))
}

func (r *Router) registerKeywords() {
	h := &KeywordHandler{KeywordService: r.KeywordService}
	lim := r.Limits

	r.Mux.Handle("POST /v1/keywords",
		r.secured(http.HandlerFunc(h.HandleCreate), lim.Moderate, ScopeSEOWrite))
	r.Mux.Handle("GET /v1/keywords",
		r.secured(http.HandlerFunc(h.HandleList), lim.Lenient, ScopeSEORead))
	r.Mux.Handle("GET /v1/keywords/{keywordId}",
		r.secured(http.HandlerFunc(h.HandleGet), lim.Lenient, ScopeSEORead))
	// Synchronous LLM call - strict rate limit by user
	r.Mux.Handle("PUT /v1/keywords/{keywordId}/reanalyze",
		r.secured(http.HandlerFunc(h.HandleReanalyze), lim.Strict, ScopeSEOWrite))
	r.Mux.Handle("DELETE /v1/keywords/{keywordId}",
		r.secured(http.HandlerFunc(h.HandleDelete), lim.Moderate, ScopeSEOWrite))
	r.Mux.Handle("POST /v1/keywords/delete-multiple",
		r.secured(http.HandlerFunc(h.HandleDeleteMany), lim.Moderate, ScopeSEOWrite))
}

func (r *Router) registerArticles() {
	h := &ArticleHandler{ArticleService: r.ArticleService}
	lim := r.Limits

	r.Mux.Handle("POST /v1/articles",
		r.secured(http.HandlerFunc(h.HandleCreate), lim.Moderate, ScopeSEOWrite))
	r.Mux.Handle("GET /v1/articles",
		r.secured(http.HandlerFunc(h.HandleList), lim.Lenient, ScopeSEORead))
	r.Mux.Handle("GET /v1/articles/{articleId}",
		r.secured(http.HandlerFunc(h.HandleGet), lim.Lenient, ScopeSEORead))
	r.Mux.Handle("GET /v1/articles/keyword/{keywordId}",
		r.secured(http.HandlerFunc(h.HandleGetByKeyword), lim.Lenient, ScopeSEORead))
	// Synchronous LLM call - strict rate limit by user
	r.Mux.Handle("POST /v1/articles/regenerate-title",
		r.secured(http.HandlerFunc(h.HandleRegenerateTitle), lim.Strict, ScopeSEOWrite))
	r.Mux.Handle("PATCH /v1/articles/{articleId}",
		r.secured(http.HandlerFunc(h.HandleUpdate), lim.Moderate, ScopeSEOWrite))
	r.Mux.Handle("DELETE /v1/articles/{articleId}",
		r.secured(http.HandlerFunc(h.HandleDelete), lim.Moderate, ScopeSEOWrite))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		public(LivezHandler(r.startTime, r.buildVersion), r.Limits.Lenient))
	r.Mux.Handle("GET /readyz",
		public(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys, r.jobs), r.Limits.Lenient))
	r.Mux.Handle("GET /metrics",
		public(metrics.Handler(), r.Limits.Lenient))
}

func (r *Router) registerDev() {
	if r.Dev == nil || r.Dev.Signer == nil {
		return
	}

	r.Mux.Handle("GET /.well-known/jwks.json",
		public(JWKSHandler(r.keys), r.Limits.Public))
	r.Mux.Handle("POST /v1/dev/token",
		public(&DevTokenHandler{Dev: r.Dev}, r.Limits.Public))
}
