package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/jobs"
	"github.com/aussiebroadwan/seodesk/pkg/llm"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{"type":"doc","content":[` +
	`{"type":"heading","attrs":{"level":1},"content":[{"type":"text","text":"Rocket Fuel"}]},` +
	`{"type":"paragraph","content":[{"type":"text","text":"Fuel "},{"type":"text","marks":[{"type":"bold"}],"text":"matters"}]},` +
	`{"type":"bulletList","content":[{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"LOX"}]}]}]}` +
	`]}`

// panicLLM panics on every completion.
type panicLLM struct{}

func (panicLLM) Complete(context.Context, llm.Request) (llm.Response, error) { panic("model exploded") }
func (panicLLM) Model() string { return "panic" }

func TestParseArticleReply(t *testing.T) {
	t.Parallel()

	t.Run("plain JSON", func(t *testing.T) {
		doc, text := parseArticleReply(sampleDoc)
		require.JSONEq(t, sampleDoc, string(doc))
		require.Equal(t, "Rocket Fuel\nFuel matters\nLOX\n\n", text)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		doc, _ := parseArticleReply("```json\n" + sampleDoc + "\n```")
		require.JSONEq(t, sampleDoc, string(doc))

		doc, _ = parseArticleReply("```" + sampleDoc + "```")
		require.JSONEq(t, sampleDoc, string(doc))
	})

	t.Run("plain text is wrapped", func(t *testing.T) {
		doc, text := parseArticleReply("Just some prose.")
		require.Equal(t, "Just some prose.", text)

		var got struct {
			Type    string `json:"type"`
			Content []struct {
				Type    string `json:"type"`
				Content []struct {
					Text string `json:"text"`
				} `json:"content"`
			} `json:"content"`
		}
		require.NoError(t, json.Unmarshal(doc, &got))
		require.Equal(t, "doc", got.Type)
		require.Len(t, got.Content, 1)
		require.Equal(t, "paragraph", got.Content[0].Type)
		require.Equal(t, "Just some prose.", got.Content[0].Content[0].Text)
	})
}

type articleFixture struct {
	svc      *ArticleService
	keywords *KeywordService
	user     domain.User
	primary  domain.Keyword
	second   domain.Keyword
}

func newArticleFixture(t *testing.T, model llm.Client, q Enqueuer) *articleFixture {
	t.Helper()

	s := newTestStore(t)
	user := seedUser(t, s, "ann@example.com", "", "")
	kw := &KeywordService{Store: s, LLM: model, Jobs: &recordingQueue{}}
	created, err := kw.Create(context.Background(), user.ID, "", []KeywordInput{
		{Keyword: "rocket fuel", Competition: ptr("low"), Volume: ptr(10)},
		{Keyword: "liquid oxygen", Competition: ptr("low"), Volume: ptr(10)},
	})
	require.NoError(t, err)

	return &articleFixture{
		svc:      &ArticleService{Store: s, LLM: model, Jobs: q},
		keywords: kw,
		user:     user,
		primary:  created[0],
		second:   created[1],
	}
}

func TestArticleCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	q := &recordingQueue{}
	f := newArticleFixture(t, llm.NewScripted(), q)

	_, err := f.svc.Create(ctx, f.user.ID, ArticleInput{Title: "T", PrimaryKeywordID: "missing"})
	require.ErrorIs(t, err, ErrPrimaryKeywordNotFound)

	_, err = f.svc.Create(ctx, f.user.ID, ArticleInput{PrimaryKeywordID: f.primary.ID})
	require.ErrorIs(t, err, ErrInvalidRequest)

	a, err := f.svc.Create(ctx, f.user.ID, ArticleInput{
		Title:               "All about rocket fuel",
		PrimaryKeywordID:    f.primary.ID,
		SecondaryKeywordIDs: []string{f.second.ID, "foreign", f.primary.ID},
		ContentBriefing:     "Be thorough",
	})
	require.NoError(t, err)
	require.Equal(t, domain.ArticleGenerating, a.Status)
	require.Equal(t, []string{f.second.ID}, a.SecondaryKeywordIDs)

	tasks := q.recorded()
	require.Len(t, tasks, 1)
	require.Equal(t, jobs.KindArticleGenerate, tasks[0].Kind)
	require.Equal(t, a.ID, tasks[0].EntityID)

	_, err = f.svc.Create(ctx, f.user.ID, ArticleInput{Title: "Again", PrimaryKeywordID: f.primary.ID})
	require.ErrorIs(t, err, ErrArticleExists)

	got, err := f.svc.GetByKeyword(ctx, f.user.ID, f.primary.ID)
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)

	none, err := f.svc.GetByKeyword(ctx, f.user.ID, f.second.ID)
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestArticleCreateQueueFull(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newArticleFixture(t, llm.NewScripted(), &recordingQueue{err: jobs.ErrQueueFull})

	a, err := f.svc.Create(ctx, f.user.ID, ArticleInput{Title: "T", PrimaryKeywordID: f.primary.ID})
	require.NoError(t, err)
	require.Equal(t, domain.ArticleFailed, a.Status)

	stored, err := f.svc.Get(ctx, f.user.ID, a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ArticleFailed, stored.Status)
	require.Equal(t, jobs.ErrQueueFull.Error(), stored.ErrorMessage)
}

func runArticle(t *testing.T, model llm.Client) (*articleFixture, domain.Article) {
	t.Helper()
	ctx := context.Background()

	q := jobs.NewMemoryQueue(jobs.MemoryConfig{Workers: 1, MaxAttempts: 2}, slogx.Discard())
	f := newArticleFixture(t, model, q)
	f.svc.RegisterJobs(q)
	require.NoError(t, q.Start(ctx))

	a, err := f.svc.Create(ctx, f.user.ID, ArticleInput{
		Title:               "All about rocket fuel",
		PrimaryKeywordID:    f.primary.ID,
		SecondaryKeywordIDs: []string{f.second.ID},
		ContentBriefing:     "Be thorough",
		ReferenceContent:    strings.Repeat("r", 6000),
	})
	require.NoError(t, err)
	q.Stop()

	stored, err := f.svc.Get(ctx, f.user.ID, a.ID)
	require.NoError(t, err)
	return f, stored
}

func TestArticleGeneration(t *testing.T) {
	t.Parallel()

	t.Run("success stores a draft", func(t *testing.T) {
		model := llm.NewScripted("```json\n" + sampleDoc + "\n```")
		_, a := runArticle(t, model)

		require.Equal(t, domain.ArticleDraft, a.Status)
		require.JSONEq(t, sampleDoc, string(a.ContentJSON))
		require.Contains(t, a.Content, "Fuel matters")
		require.Equal(t, 10, a.PromptTokens)
		require.Equal(t, 20, a.CompletionTokens)

		require.Equal(t, 1, model.Calls())
		req := model.Requests[0]
		require.Contains(t, req.System, "TipTap")
		require.Contains(t, req.User, "**Primary Keyword:** rocket fuel")
		require.Contains(t, req.User, "liquid oxygen")
		require.Contains(t, req.User, strings.Repeat("r", maxReferenceChars))
		require.NotContains(t, req.User, strings.Repeat("r", maxReferenceChars+1))
	})

	t.Run("provider failure after retries", func(t *testing.T) {
		model := llm.NewScripted().FailWith(errProvider)
		_, a := runArticle(t, model)

		require.Equal(t, domain.ArticleFailed, a.Status)
		require.Contains(t, a.ErrorMessage, "provider unavailable")
		require.Equal(t, 2, model.Calls())
	})

	t.Run("panicking task fails the article", func(t *testing.T) {
		_, a := runArticle(t, panicLLM{})

		require.Equal(t, domain.ArticleFailed, a.Status)
		require.Contains(t, a.ErrorMessage, "model exploded")
	})
}

func TestArticleUpdateAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newArticleFixture(t, llm.NewScripted(), &recordingQueue{})
	a, err := f.svc.Create(ctx, f.user.ID, ArticleInput{Title: "T", PrimaryKeywordID: f.primary.ID})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.user.ID, a.ID, ArticleUpdate{Status: ptr("GENERATING")})
	require.ErrorIs(t, err, ErrInvalidArticleStatus)

	_, err = f.svc.Update(ctx, f.user.ID, a.ID, ArticleUpdate{ContentJSON: json.RawMessage(`{broken`)})
	require.ErrorIs(t, err, ErrInvalidRequest)

	updated, err := f.svc.Update(ctx, f.user.ID, a.ID, ArticleUpdate{
		Title:       ptr("New title"),
		Content:     ptr("Body"),
		ContentJSON: json.RawMessage(sampleDoc),
		Status:      ptr("published"),
	})
	require.NoError(t, err)
	require.Equal(t, "New title", updated.Title)
	require.Equal(t, "Body", updated.Content)
	require.Equal(t, domain.ArticlePublished, updated.Status)
	require.JSONEq(t, sampleDoc, string(updated.ContentJSON))

	_, err = f.svc.Get(ctx, "someone-else", a.ID)
	require.ErrorIs(t, err, ErrArticleNotFound)

	list, err := f.svc.List(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, f.svc.Delete(ctx, f.user.ID, a.ID))
	require.ErrorIs(t, f.svc.Delete(ctx, f.user.ID, a.ID), ErrArticleNotFound)
}

func TestArticleRegenerateTitle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	model := llm.NewScripted("  \"Rocket Fuel, Explained\"\n")
	f := newArticleFixture(t, model, &recordingQueue{})

	title, err := f.svc.RegenerateTitle(ctx, f.user.ID, f.primary.ID, "for beginners")
	require.NoError(t, err)
	require.Equal(t, "Rocket Fuel, Explained", title)
	require.Contains(t, model.Requests[0].User, "Keyword: rocket fuel")
	require.Contains(t, model.Requests[0].User, "Additional context: for beginners")

	_, err = f.svc.RegenerateTitle(ctx, f.user.ID, "missing", "")
	require.ErrorIs(t, err, ErrKeywordNotFound)
}
