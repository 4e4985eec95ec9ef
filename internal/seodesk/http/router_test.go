package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/jobs"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/service"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store/drivers/sqlite"
	"github.com/aussiebroadwan/seodesk/pkg/httpx"
	"github.com/aussiebroadwan/seodesk/pkg/idx"
	"github.com/aussiebroadwan/seodesk/pkg/jwtx"
	"github.com/aussiebroadwan/seodesk/pkg/llm"
	"github.com/aussiebroadwan/seodesk/pkg/mailx"
	"github.com/aussiebroadwan/seodesk/pkg/scrape"
	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
)

const (
	testIssuer   = "https://id.test"
	testAudience = "seodesk-test"
	testFrontend = "https://app.test"
)

type testEnv struct {
	srv    *httptest.Server
	client *seosdk.Client
	queue  *jobs.MemoryQueue
	llm    *llm.Scripted
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewDevSigner()
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := jwtx.NewVerifier(keys, jwtx.VerifyOptions{
		Issuer:   testIssuer,
		Audience: []string{testAudience},
		Leeway:   time.Minute,
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	queue := jobs.NewMemoryQueue(jobs.MemoryConfig{Workers: 1, QueueSize: 16}, logger)
	model := llm.NewScripted("\"Go Testing In Practice\"")

	access := &service.Access{Store: st}
	keywords := &service.KeywordService{Store: st, LLM: model, Jobs: queue}
	articles := &service.ArticleService{Store: st, LLM: model, Jobs: queue}
	keywords.RegisterJobs(queue)
	articles.RegisterJobs(queue)

	r := NewRouter(keys, verifier, "test", st, queue, logger)
	generous := httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	r.Limits = RateLimits{Strict: generous, Moderate: generous, Lenient: generous, Public: generous}
	r.FrontendURL = testFrontend
	r.Dev = &DevTokens{Signer: signer, Issuer: testIssuer, Audience: []string{testAudience}, TTL: time.Hour}
	r.UserService = &service.UserService{Store: st}
	r.InviteService = &service.InviteService{
		Store:  st,
		Access: access,
		Notifier: &service.InviteNotifier{
			Store:       st,
			Mailer:      mailx.LogMailer{},
			FrontendURL: testFrontend,
		},
	}
	r.MemberService = &service.MemberService{Store: st, Access: access}
	r.WebsiteService = &service.WebsiteService{Store: st, Scraper: scrape.New(time.Second)}
	r.KeywordService = keywords
	r.ArticleService = articles
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{
		srv:    srv,
		client: seosdk.NewClient(srv.URL),
		queue:  queue,
		llm:    model,
	}
}

// as returns a client authenticated as a fresh user with every scope.
func (e *testEnv) as(t *testing.T, email string, scopes ...string) *seosdk.Client {
	t.Helper()

	resp, err := e.client.DevToken(context.Background(), seosdk.DevTokenRequest{
		Subject:   idx.New().String(),
		Email:     email,
		GivenName: strings.Split(email, "@")[0],
		Scopes:    scopes,
	})
	require.NoError(t, err)
	require.Equal(t, "Bearer", resp.TokenType)
	return e.client.WithToken(resp.AccessToken)
}

func requireAPIError(t *testing.T, err error, status int, code string) *seosdk.APIError {
	t.Helper()

	var apiErr *seosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestInviteLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.as(t, "owner@example.com")
	invitee := env.as(t, "invitee@example.com")

	site, err := owner.SubmitWebsite(ctx, "example.com")
	require.NoError(t, err)

	// The invitee must exist in the directory before accepting.
	_, err = invitee.ListWebsites(ctx)
	require.NoError(t, err)

	inv, err := owner.CreateInvite(ctx, site.ID, seosdk.CreateInviteRequest{
		Email:   "Invitee@Example.com",
		Message: "Join us",
	})
	require.NoError(t, err)
	require.Equal(t, seosdk.InviteStatusPending, inv.Status)
	require.Equal(t, "invitee@example.com", inv.Email)
	require.NotEmpty(t, inv.Token)

	_, err = owner.CreateInvite(ctx, site.ID, seosdk.CreateInviteRequest{Email: "invitee@example.com"})
	requireAPIError(t, err, http.StatusConflict, seosdk.ErrorCodeConflict)

	got, err := env.client.GetInvite(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, inv.ID, got.ID)
	require.Empty(t, got.Token)

	accepted, err := env.client.AcceptInvite(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, msgInviteAccepted, accepted.Message)
	require.Equal(t, site.ID, accepted.Member.WebsiteID)
	require.True(t, accepted.Member.IsActive)

	_, err = env.client.AcceptInvite(ctx, inv.Token)
	apiErr := requireAPIError(t, err, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest)
	require.Equal(t, "Invite has already been accepted", apiErr.Description)

	members, err := owner.ListMembers(ctx, site.ID, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, members.Total)
	require.NotNil(t, members.Items[0].User)
	require.Equal(t, "invitee@example.com", members.Items[0].User.Email)

	count, err := invitee.CountMembers(ctx, site.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	_, err = owner.CreateInvite(ctx, site.ID, seosdk.CreateInviteRequest{Email: "invitee@example.com"})
	apiErr = requireAPIError(t, err, http.StatusConflict, seosdk.ErrorCodeConflict)
	require.Equal(t, service.ErrEmailAlreadyMember.Error(), apiErr.Description)

	page, err := owner.ListInvites(ctx, site.ID, 1, 10, "accepted")
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)

	_, err = owner.ListInvites(ctx, site.ID, 1, 10, "archived")
	requireAPIError(t, err, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest)
}

func TestAcceptLinkRedirects(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.as(t, "owner@example.com")
	invitee := env.as(t, "guest@example.com")
	site, err := owner.SubmitWebsite(ctx, "https://example.org")
	require.NoError(t, err)
	_, err = invitee.ListWebsites(ctx)
	require.NoError(t, err)

	inv, err := owner.CreateInvite(ctx, site.ID, seosdk.CreateInviteRequest{Email: "guest@example.com"})
	require.NoError(t, err)

	loc, err := env.client.FollowAcceptLink(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, testFrontend+"/dashboard?inviteAccepted=true", loc)

	loc, err = env.client.FollowAcceptLink(ctx, inv.Token)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(loc, testFrontend+"/dashboard?inviteError="), loc)
	require.Contains(t, loc, "accepted")

	loc, err = env.client.FollowAcceptLink(ctx, "not-a-token")
	require.NoError(t, err)
	require.Contains(t, loc, "inviteError=Invite+not+found")
}

func TestAcceptWithoutAccount(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.as(t, "owner@example.com")
	site, err := owner.SubmitWebsite(ctx, "example.net")
	require.NoError(t, err)

	inv, err := owner.CreateInvite(ctx, site.ID, seosdk.CreateInviteRequest{Email: "stranger@example.com"})
	require.NoError(t, err)

	_, err = env.client.AcceptInvite(ctx, inv.Token)
	apiErr := requireAPIError(t, err, http.StatusNotFound, seosdk.ErrorCodeNotFound)
	require.Equal(t, service.ErrNoAccount.Error(), apiErr.Description)

	// The failed attempt leaves the invite usable.
	got, err := env.client.GetInvite(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, seosdk.InviteStatusPending, got.Status)
}

func TestResendAndRejectShareRoute(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.as(t, "owner@example.com")
	site, err := owner.SubmitWebsite(ctx, "example.com")
	require.NoError(t, err)

	inv, err := owner.CreateInvite(ctx, site.ID, seosdk.CreateInviteRequest{Email: "later@example.com"})
	require.NoError(t, err)

	// Resend is secured.
	_, err = env.client.ResendInvite(ctx, inv.ID)
	requireAPIError(t, err, http.StatusUnauthorized, seosdk.ErrorCodeInvalidToken)

	resent, err := owner.ResendInvite(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.ID, resent.ID)
	require.NotEqual(t, inv.Token, resent.Token)
	require.False(t, resent.ExpiresAt.Before(inv.ExpiresAt))

	_, err = env.client.GetInvite(ctx, inv.Token)
	require.True(t, seosdk.IsNotFound(err))

	// Reject is public.
	msg, err := env.client.RejectInvite(ctx, resent.Token, "Not right now")
	require.NoError(t, err)
	require.Equal(t, msgInviteRejected, msg.Message)

	_, err = env.client.GetInvite(ctx, resent.Token)
	apiErr := requireAPIError(t, err, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest)
	require.Equal(t, service.ErrInvitationNotValid.Error(), apiErr.Description)

	rejected, err := owner.ListInvites(ctx, site.ID, 1, 10, "rejected")
	require.NoError(t, err)
	require.Equal(t, 1, rejected.Total)
	require.Equal(t, "Not right now", rejected.Items[0].RejectionReason)

	_, err = owner.ResendInvite(ctx, inv.ID)
	apiErr = requireAPIError(t, err, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest)
	require.Equal(t, service.ErrOnlyPendingResend.Error(), apiErr.Description)

	resp, err := http.Post(env.srv.URL+"/v1/members/invite/"+inv.ID+"/archive", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInviteActionPatternsOnServeMux(t *testing.T) {
	create := "POST /v1/members/invite/websites/{websiteId}"
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	t.Run("per-action patterns conflict with create", func(t *testing.T) {
		for _, pattern := range []string{
			"POST /v1/members/invite/{token}/reject",
			"POST /v1/members/invite/{inviteId}/resend",
		} {
			mux := http.NewServeMux()
			mux.Handle(create, noop)
			require.Panics(t, func() { mux.Handle(pattern, noop) }, pattern)
		}
	})

	t.Run("reject and resend alone do not conflict", func(t *testing.T) {
		mux := http.NewServeMux()
		require.NotPanics(t, func() {
			mux.Handle("POST /v1/members/invite/{token}/reject", noop)
			mux.Handle("POST /v1/members/invite/{inviteId}/resend", noop)
		})
	})

	t.Run("shared action pattern coexists with create", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.Handle(create, noop)
		require.NotPanics(t, func() { mux.Handle("POST /v1/members/invite/{ref}/{action}", noop) })

		req := httptest.NewRequest(http.MethodPost, "/v1/members/invite/websites/site-1", nil)
		_, pattern := mux.Handler(req)
		require.Equal(t, create, pattern)
	})

	t.Run("unknown action is not found", func(t *testing.T) {
		h := inviteActions(noop, noop)
		req := httptest.NewRequest(http.MethodPost, "/v1/members/invite/abc/archive", nil)
		req.SetPathValue("ref", "abc")
		req.SetPathValue("action", "archive")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRevokeInvite(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.as(t, "owner@example.com")
	outsider := env.as(t, "outsider@example.com")
	site, err := owner.SubmitWebsite(ctx, "example.com")
	require.NoError(t, err)

	inv, err := owner.CreateInvite(ctx, site.ID, seosdk.CreateInviteRequest{Email: "maybe@example.com"})
	require.NoError(t, err)

	_, err = outsider.RevokeInvite(ctx, inv.ID)
	requireAPIError(t, err, http.StatusForbidden, seosdk.ErrorCodeForbidden)

	msg, err := owner.RevokeInvite(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, msgInviteRevoked, msg.Message)

	_, err = owner.RevokeInvite(ctx, inv.ID)
	requireAPIError(t, err, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest)

	// A revoked invite no longer blocks a new one.
	_, err = owner.CreateInvite(ctx, site.ID, seosdk.CreateInviteRequest{Email: "maybe@example.com"})
	require.NoError(t, err)
}

func TestBulkInviteSkipsInaccessibleWebsites(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.as(t, "owner@example.com")
	other := env.as(t, "other@example.com")
	mine1, err := owner.SubmitWebsite(ctx, "one.example.com")
	require.NoError(t, err)
	mine2, err := owner.SubmitWebsite(ctx, "two.example.com")
	require.NoError(t, err)
	theirs, err := other.SubmitWebsite(ctx, "three.example.com")
	require.NoError(t, err)

	created, err := owner.BulkInvite(ctx, seosdk.BulkInviteRequest{
		Email:      "team@example.com",
		WebsiteIDs: []string{mine1.ID, theirs.ID, mine2.ID},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	_, err = owner.BulkInvite(ctx, seosdk.BulkInviteRequest{Email: "team@example.com"})
	requireAPIError(t, err, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest)
}

func TestMemberRemoval(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	owner := env.as(t, "owner@example.com")
	member := env.as(t, "member@example.com")
	site, err := owner.SubmitWebsite(ctx, "example.com")
	require.NoError(t, err)
	_, err = member.ListWebsites(ctx)
	require.NoError(t, err)

	inv, err := owner.CreateInvite(ctx, site.ID, seosdk.CreateInviteRequest{Email: "member@example.com"})
	require.NoError(t, err)
	accepted, err := env.client.AcceptInvite(ctx, inv.Token)
	require.NoError(t, err)

	// An active member may administer the website.
	_, err = member.ListInvites(ctx, site.ID, 1, 10, "")
	require.NoError(t, err)

	msg, err := owner.RemoveMember(ctx, accepted.Member.ID)
	require.NoError(t, err)
	require.Equal(t, msgMemberRemoved, msg.Message)

	m, err := owner.GetMember(ctx, accepted.Member.ID)
	require.NoError(t, err)
	require.False(t, m.IsActive)

	count, err := owner.CountMembers(ctx, site.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = member.ListMembers(ctx, site.ID, 1, 10)
	requireAPIError(t, err, http.StatusForbidden, seosdk.ErrorCodeForbidden)

	active := true
	m, err = owner.UpdateMember(ctx, accepted.Member.ID, seosdk.UpdateMemberRequest{IsActive: &active})
	require.NoError(t, err)
	require.True(t, m.IsActive)
}

func TestAuthenticationAndScopes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.client.ListWebsites(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, seosdk.ErrorCodeInvalidToken)

	_, err = env.client.WithToken("garbage").ListWebsites(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, seosdk.ErrorCodeInvalidToken)

	reader := env.as(t, "reader@example.com", ScopeSEORead)
	_, err = reader.ListWebsites(ctx)
	require.NoError(t, err)
	_, err = reader.SubmitWebsite(ctx, "example.com")
	requireAPIError(t, err, http.StatusForbidden, seosdk.ErrorCodeInsufficientScope)

	anonymous := env.as(t, "")
	_, err = anonymous.ListWebsites(ctx)
	apiErr := requireAPIError(t, err, http.StatusUnauthorized, seosdk.ErrorCodeInvalidToken)
	require.Equal(t, service.ErrProfileIncomplete.Error(), apiErr.Description)

	// A second subject claiming a known e-mail is refused.
	first, err := env.client.DevToken(ctx, seosdk.DevTokenRequest{Subject: "first", Email: "dup@example.com"})
	require.NoError(t, err)
	_, err = env.client.WithToken(first.AccessToken).ListWebsites(ctx)
	require.NoError(t, err)
	second, err := env.client.DevToken(ctx, seosdk.DevTokenRequest{Subject: "second", Email: "dup@example.com"})
	require.NoError(t, err)
	_, err = env.client.WithToken(second.AccessToken).ListWebsites(ctx)
	requireAPIError(t, err, http.StatusConflict, seosdk.ErrorCodeConflict)

	// Once known, a token without e-mail is enough.
	bare, err := env.client.DevToken(ctx, seosdk.DevTokenRequest{Subject: "first"})
	require.NoError(t, err)
	_, err = env.client.WithToken(bare.AccessToken).ListWebsites(ctx)
	require.NoError(t, err)

	_, err = env.client.DevToken(ctx, seosdk.DevTokenRequest{Email: "nosub@example.com"})
	requireAPIError(t, err, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest)
}

func TestKeywordsAndArticles(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user := env.as(t, "writer@example.com")
	other := env.as(t, "other@example.com")

	comp := "low"
	vol := 1200
	kws, err := user.CreateKeywords(ctx, seosdk.CreateKeywordsRequest{Keywords: []seosdk.KeywordItem{
		{Keyword: "  Go Testing "},
		{Keyword: "go testing"},
		{Keyword: "table tests", Competition: &comp, Volume: &vol},
	}})
	require.NoError(t, err)
	require.Len(t, kws, 2)
	require.Equal(t, "go testing", kws[0].Keyword)
	require.False(t, kws[0].IsAnalyzed)
	require.True(t, kws[1].IsAnalyzed)
	require.Equal(t, 1, env.queue.Len())

	_, err = user.CreateKeywords(ctx, seosdk.CreateKeywordsRequest{})
	requireAPIError(t, err, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest)

	_, err = other.GetKeyword(ctx, kws[0].ID)
	require.True(t, seosdk.IsNotFound(err))

	article, err := user.CreateArticle(ctx, seosdk.CreateArticleRequest{
		Title:               "Testing in Go",
		PrimaryKeywordID:    kws[0].ID,
		SecondaryKeywordIDs: []string{kws[1].ID, "unknown"},
		ContentBriefing:     "Short and practical",
	})
	require.NoError(t, err)
	require.Equal(t, seosdk.ArticleGenerating, article.Status)
	require.Equal(t, []string{kws[1].ID}, article.SecondaryKeywordIDs)

	_, err = user.CreateArticle(ctx, seosdk.CreateArticleRequest{Title: "Again", PrimaryKeywordID: kws[0].ID})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest)
	require.Equal(t, service.ErrArticleExists.Error(), apiErr.Description)

	byKeyword, err := user.GetArticleByKeyword(ctx, kws[0].ID)
	require.NoError(t, err)
	require.NotNil(t, byKeyword)
	require.Equal(t, article.ID, byKeyword.ID)

	none, err := user.GetArticleByKeyword(ctx, kws[1].ID)
	require.NoError(t, err)
	require.Nil(t, none)

	title, err := user.RegenerateTitle(ctx, seosdk.RegenerateTitleRequest{PrimaryKeywordID: kws[0].ID})
	require.NoError(t, err)
	require.Equal(t, "Go Testing In Practice", title)
	require.Equal(t, 1, env.llm.Calls())

	published := "published"
	updated, err := user.UpdateArticle(ctx, article.ID, seosdk.UpdateArticleRequest{Status: &published})
	require.NoError(t, err)
	require.Equal(t, seosdk.ArticlePublished, updated.Status)

	failed := "FAILED"
	_, err = user.UpdateArticle(ctx, article.ID, seosdk.UpdateArticleRequest{Status: &failed})
	requireAPIError(t, err, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest)

	require.NoError(t, user.DeleteArticle(ctx, article.ID))
	_, err = user.GetArticle(ctx, article.ID)
	require.True(t, seosdk.IsNotFound(err))

	require.NoError(t, user.DeleteKeywords(ctx, []string{kws[0].ID, kws[1].ID}))
	list, err := user.ListKeywords(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	err = user.DeleteKeyword(ctx, kws[0].ID)
	require.True(t, seosdk.IsNotFound(err))
}

func TestHealthEndpoints(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	live, err := env.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := env.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Jobs)

	jwks, err := env.client.GetJWKS(ctx)
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)

	env.queue.Stop()
	resp, err := http.Get(env.srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
