package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/jobs"
	"github.com/aussiebroadwan/seodesk/pkg/llm"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParseKeywordAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("extracts the JSON block", func(t *testing.T) {
		a, ok := parseKeywordAnalysis("rockets", "Sure! ```json\n"+
			`{"competition":"HIGH","competitionScore":140,"volume":1234.6,"difficulty":"hard","trend":"rising","recommendedTitle":"Rockets 101"}`+
			"\n```")
		require.True(t, ok)
		require.Equal(t, domain.KeywordAnalysis{
			Competition:      domain.CompetitionHigh,
			CompetitionScore: 100,
			Volume:           1235,
			Difficulty:       "hard",
			Trend:            "rising",
			RecommendedTitle: "Rockets 101",
		}, a)
	})

	t.Run("fills gaps with defaults", func(t *testing.T) {
		a, ok := parseKeywordAnalysis("rockets", `{"competition":"extreme","volume":-5}`)
		require.True(t, ok)
		require.Equal(t, domain.CompetitionMedium, a.Competition)
		require.Equal(t, 50, a.CompetitionScore)
		require.Zero(t, a.Volume)
		require.Equal(t, "moderate", a.Difficulty)
		require.Equal(t, "stable", a.Trend)
		require.Equal(t, "Guide to rockets", a.RecommendedTitle)
	})

	t.Run("no JSON", func(t *testing.T) {
		_, ok := parseKeywordAnalysis("rockets", "I cannot help with that")
		require.False(t, ok)
		_, ok = parseKeywordAnalysis("rockets", "{not json}")
		require.False(t, ok)
	})
}

func TestKeywordCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	user := seedUser(t, s, "ann@example.com", "", "")
	queue := &recordingQueue{}
	svc := &KeywordService{Store: s, LLM: llm.NewScripted(), Jobs: queue}

	created, err := svc.Create(ctx, user.ID, "", []KeywordInput{
		{Keyword: " Rocket Fuel "},
		{Keyword: "rocket fuel"},
		{Keyword: "launch pads", Competition: ptr("High"), Volume: ptr(300)},
		{Keyword: "boosters", Competition: ptr("low")},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	require.Equal(t, "rocket fuel", created[0].Keyword)

	require.True(t, created[1].IsAnalyzed)
	require.Equal(t, domain.CompetitionHigh, created[1].Competition)
	require.Equal(t, 300, created[1].Volume)
	require.False(t, created[2].IsAnalyzed)
	require.Equal(t, domain.CompetitionLow, created[2].Competition)

	tasks := queue.recorded()
	require.Len(t, tasks, 2)
	require.Equal(t, jobs.KindKeywordAnalyze, tasks[0].Kind)
	require.Equal(t, created[0].ID, tasks[0].EntityID)
	require.Equal(t, created[2].ID, tasks[1].EntityID)

	stored, err := svc.Get(ctx, user.ID, created[1].ID)
	require.NoError(t, err)
	require.True(t, stored.IsAnalyzed)

	again, err := svc.Create(ctx, user.ID, "", []KeywordInput{{Keyword: "ROCKET FUEL"}, {Keyword: "orbits"}})
	require.NoError(t, err)
	require.Len(t, again, 1)
	require.Equal(t, "orbits", again[0].Keyword)

	_, err = svc.Create(ctx, user.ID, "", []KeywordInput{{Keyword: "x", Competition: ptr("extreme")}})
	require.ErrorIs(t, err, ErrInvalidRequest)
	_, err = svc.Create(ctx, user.ID, "", []KeywordInput{{Keyword: "x", Volume: ptr(-1)}})
	require.ErrorIs(t, err, ErrInvalidRequest)
	_, err = svc.Create(ctx, user.ID, "", []KeywordInput{{Keyword: "  "}})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestKeywordAnalysisRunsOnQueue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	user := seedUser(t, s, "ann@example.com", "", "")
	q := jobs.NewMemoryQueue(jobs.MemoryConfig{Workers: 1}, slogx.Discard())
	model := llm.NewScripted(`{"competition":"low","competitionScore":12,"volume":90,"difficulty":"easy","trend":"rising","recommendedTitle":"Fuel facts"}`)
	svc := &KeywordService{Store: s, LLM: model, Jobs: q}
	svc.RegisterJobs(q)
	require.NoError(t, q.Start(ctx))

	created, err := svc.Create(ctx, user.ID, "", []KeywordInput{{Keyword: "rocket fuel"}})
	require.NoError(t, err)
	q.Stop()

	k, err := svc.Get(ctx, user.ID, created[0].ID)
	require.NoError(t, err)
	require.True(t, k.IsAnalyzed)
	require.Equal(t, domain.CompetitionLow, k.Competition)
	require.Equal(t, 90, k.Volume)
	require.Equal(t, "Fuel facts", k.RecommendedTitle)
	require.NotNil(t, k.Analysis)
	require.Equal(t, 12, k.Analysis.CompetitionScore)
	require.Equal(t, 1, model.Calls())
	require.Contains(t, model.Requests[0].User, `"rocket fuel"`)
}

func TestKeywordReanalyzeFallback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	user := seedUser(t, s, "ann@example.com", "", "")
	svc := &KeywordService{Store: s, LLM: llm.NewScripted().FailWith(errProvider), Jobs: &recordingQueue{}}

	created, err := svc.Create(ctx, user.ID, "", []KeywordInput{{Keyword: "rocket fuel"}})
	require.NoError(t, err)

	k, err := svc.Reanalyze(ctx, user.ID, created[0].ID)
	require.NoError(t, err)
	require.True(t, k.IsAnalyzed)
	require.Equal(t, domain.CompetitionMedium, k.Competition)
	require.Equal(t, 1000, k.Volume)
	require.Equal(t, "Complete Guide to rocket fuel", k.RecommendedTitle)

	_, err = svc.Reanalyze(ctx, "someone-else", created[0].ID)
	require.ErrorIs(t, err, ErrKeywordNotFound)
}

func TestKeywordDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	user := seedUser(t, s, "ann@example.com", "", "")
	svc := &KeywordService{Store: s, LLM: llm.NewScripted(), Jobs: &recordingQueue{}}

	created, err := svc.Create(ctx, user.ID, "", []KeywordInput{
		{Keyword: "a"}, {Keyword: "b"}, {Keyword: "c"},
	})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, user.ID, "missing"), ErrKeywordNotFound)
	require.NoError(t, svc.Delete(ctx, user.ID, created[0].ID))

	err = svc.DeleteMany(ctx, user.ID, []string{created[1].ID, "missing", created[2].ID})
	require.ErrorIs(t, err, ErrKeywordNotFound)

	left, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, created[2].ID, left[0].ID)
}
