package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/jobs"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/idx"
	"github.com/aussiebroadwan/seodesk/pkg/llm"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

const keywordPrompt = `You are an SEO expert. Analyze the following keyword and provide realistic SEO metrics.

Keyword: "%s"

Provide a JSON response with the following structure:
{
  "competition": "low" | "medium" | "high",
  "competitionScore": number (1-100, where 1 is easiest to rank),
  "volume": number (estimated monthly search volume on Google),
  "difficulty": "easy" | "moderate" | "hard" | "very hard",
  "trend": "rising" | "stable" | "declining",
  "recommendedTitle": "A compelling SEO-optimized article title for this keyword (max 60 characters)"
}

Popular topics have higher volumes, niche topics lower ones. Competition reflects how hard
it is to rank on Google's first page. The title should include the keyword naturally.

Return ONLY valid JSON, no additional text.`

// Enqueuer submits background tasks.
type Enqueuer interface {
	Enqueue(ctx context.Context, t jobs.Task) error
}

// KeywordInput is one keyword of a create request. Competition and Volume
// are prefilled values from an upload; nil means unknown.
type KeywordInput struct {
	Keyword     string
	Competition *string
	Volume      *int
}

// KeywordService manages a user's keywords and their model analysis.
type KeywordService struct {
	Store store.Store
	LLM   llm.Client
	Jobs  Enqueuer
}

// RegisterJobs installs the keyword analysis handler on q.
func (s *KeywordService) RegisterJobs(q jobs.Queue) {
	q.Register(jobs.KindKeywordAnalyze, s.handleAnalyze, nil)
}

// Create stores new keywords for userID. Keywords are trimmed and
// lower-cased; duplicates and keywords the user already owns are skipped.
// Keywords without prefilled metrics are queued for analysis.
func (s *KeywordService) Create(
	ctx context.Context,
	userID, websiteID string,
	items []KeywordInput,
) ([]domain.Keyword, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate everything before writing anything.
	type prepared struct {
		text        string
		competition domain.Competition
		volume      int
		prefilled   bool
	}
	batch := make([]prepared, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		text := strings.ToLower(strings.TrimSpace(it.Keyword))
		if text == "" {
			return nil, ErrInvalidRequest
		}
		p := prepared{text: text, competition: domain.CompetitionMedium}
		if it.Competition != nil {
			c, ok := domain.ParseCompetition(strings.ToLower(strings.TrimSpace(*it.Competition)))
			if !ok {
				return nil, ErrInvalidRequest
			}
			p.competition = c
		}
		if it.Volume != nil {
			if *it.Volume < 0 {
				return nil, ErrInvalidRequest
			}
			p.volume = *it.Volume
		}
		p.prefilled = it.Competition != nil && it.Volume != nil

		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		batch = append(batch, p)
	}

	// 2. Skip keywords the user already owns.
	owned, err := s.Store.Keywords().ListKeywordTextsByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list keywords", slog.Any("error", err))
		return nil, err
	}
	have := make(map[string]struct{}, len(owned))
	for _, k := range owned {
		have[k] = struct{}{}
	}

	// 3. Create and queue analysis.
	out := make([]domain.Keyword, 0, len(batch))
	for _, p := range batch {
		if _, ok := have[p.text]; ok {
			log.Debug("keyword already exists", slog.String("keyword", p.text))
			continue
		}

		now := time.Now().UTC()
		k := domain.Keyword{
			ID:          idx.NewAt(now).String(),
			UserID:      userID,
			WebsiteID:   websiteID,
			Keyword:     p.text,
			Competition: p.competition,
			Volume:      p.volume,
			IsAnalyzed:  p.prefilled,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.Store.Keywords().CreateKeyword(ctx, k); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				continue
			}
			log.Error("failed to create keyword", slog.Any("error", err))
			return nil, err
		}
		out = append(out, k)

		if p.prefilled {
			continue
		}
		if err := s.Jobs.Enqueue(ctx, jobs.Task{Kind: jobs.KindKeywordAnalyze, EntityID: k.ID}); err != nil {
			log.Warn("failed to queue keyword analysis",
				slog.String("keyword_id", k.ID),
				slog.Any("error", err),
			)
		}
	}

	log.Info("keywords created",
		slog.Int("requested", len(items)),
		slog.Int("created", len(out)),
	)
	return out, nil
}

// List returns the user's keywords, newest first.
func (s *KeywordService) List(ctx context.Context, userID string) ([]domain.Keyword, error) {
	return s.Store.Keywords().ListKeywordsByUser(ctx, userID)
}

// Get returns one of the user's keywords.
func (s *KeywordService) Get(ctx context.Context, userID, keywordID string) (domain.Keyword, error) {
	k, err := s.Store.Keywords().GetKeywordForUser(ctx, keywordID, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Keyword{}, ErrKeywordNotFound
	}
	return k, err
}

// Reanalyze runs the analysis synchronously and returns the updated keyword.
func (s *KeywordService) Reanalyze(ctx context.Context, userID, keywordID string) (domain.Keyword, error) {
	k, err := s.Get(ctx, userID, keywordID)
	if err != nil {
		return domain.Keyword{}, err
	}
	if err := s.analyze(ctx, k); err != nil {
		return domain.Keyword{}, err
	}
	return s.Get(ctx, userID, keywordID)
}

// Delete removes one of the user's keywords.
func (s *KeywordService) Delete(ctx context.Context, userID, keywordID string) error {
	err := s.Store.Keywords().DeleteKeyword(ctx, keywordID, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrKeywordNotFound
	}
	return err
}

// DeleteMany removes keywords in order and stops at the first failure.
func (s *KeywordService) DeleteMany(ctx context.Context, userID string, keywordIDs []string) error {
	for _, id := range keywordIDs {
		if err := s.Delete(ctx, userID, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *KeywordService) handleAnalyze(ctx context.Context, t jobs.Task) error {
	k, err := s.Store.Keywords().GetKeywordByID(ctx, t.EntityID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Deleted while queued.
			return nil
		}
		return err
	}
	return s.analyze(ctx, k)
}

func (s *KeywordService) analyze(ctx context.Context, k domain.Keyword) error {
	log := slogx.FromContext(ctx).With(slog.String("keyword_id", k.ID))

	a := fallbackAnalysis(k.Keyword)
	resp, err := s.LLM.Complete(ctx, llm.Request{User: fmt.Sprintf(keywordPrompt, k.Keyword)})
	if err != nil {
		log.Warn("keyword analysis failed, using defaults", slog.Any("error", err))
	} else if parsed, ok := parseKeywordAnalysis(k.Keyword, resp.Content); ok {
		a = parsed
	} else {
		log.Warn("keyword analysis reply had no JSON, using defaults")
	}

	if err := s.Store.Keywords().SaveKeywordAnalysis(ctx, k.ID, a); err != nil {
		log.Error("failed to save keyword analysis", slog.Any("error", err))
		return err
	}
	log.Debug("keyword analysed",
		slog.String("competition", string(a.Competition)),
		slog.Int("volume", a.Volume),
	)
	return nil
}

func fallbackAnalysis(keyword string) domain.KeywordAnalysis {
	return domain.KeywordAnalysis{
		Competition:      domain.CompetitionMedium,
		CompetitionScore: 50,
		Volume:           1000,
		Difficulty:       "moderate",
		Trend:            "stable",
		RecommendedTitle: "Complete Guide to " + keyword,
	}
}

// parseKeywordAnalysis reads the first JSON object in reply, filling gaps
// with defaults. ok is false when the reply holds no JSON object.
func parseKeywordAnalysis(keyword, reply string) (domain.KeywordAnalysis, bool) {
	obj, ok := firstJSONObject(reply)
	if !ok {
		return domain.KeywordAnalysis{}, false
	}
	doc := gjson.Parse(obj)

	competition, ok := domain.ParseCompetition(strings.ToLower(doc.Get("competition").String()))
	if !ok {
		competition = domain.CompetitionMedium
	}

	score := doc.Get("competitionScore").Int()
	if score == 0 {
		score = 50
	}
	score = min(100, max(1, score))

	volume := int(math.Round(doc.Get("volume").Float()))
	volume = max(0, volume)

	a := domain.KeywordAnalysis{
		Competition:      competition,
		CompetitionScore: int(score),
		Volume:           volume,
		Difficulty:       orDefault(doc.Get("difficulty").String(), "moderate"),
		Trend:            orDefault(doc.Get("trend").String(), "stable"),
		RecommendedTitle: orDefault(doc.Get("recommendedTitle").String(), "Guide to "+keyword),
	}
	return a, true
}

// firstJSONObject returns the span from the first '{' to the last '}' when
// it is valid JSON.
func firstJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	obj := s[start : end+1]
	if !gjson.Valid(obj) {
		return "", false
	}
	return obj, true
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
