package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
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

const (
	maxReferenceChars = 5000
	articleMaxTokens  = 8000
)

const articleSystemPrompt = `You are an expert SEO content writer. Generate a comprehensive, well-structured article in TipTap JSON format.

The article must be valid JSON that the TipTap rich text editor can parse, for example:
{
  "type": "doc",
  "content": [
    {"type": "heading", "attrs": {"level": 1}, "content": [{"type": "text", "text": "Main Title"}]},
    {"type": "paragraph", "content": [
      {"type": "text", "text": "Regular text "},
      {"type": "text", "marks": [{"type": "bold"}], "text": "bold text"}
    ]},
    {"type": "bulletList", "content": [
      {"type": "listItem", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "Item"}]}]}
    ]},
    {"type": "blockquote", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "Quote"}]}]}
  ]
}

Available node types: doc, paragraph, heading (levels 1-4), bulletList, orderedList, listItem, blockquote, codeBlock, horizontalRule.
Available marks: bold, italic, strike, code, link (with href attr).

Return ONLY the JSON object, no markdown code fences or explanations. Use h1 for the title,
h2 for sections and h3 for subsections, and optimise the content for the given keywords.`

const titlePrompt = `Generate an engaging, SEO-optimized article title for the following keyword:

Keyword: %s
%s
Requirements:
- The title should be compelling and click-worthy
- Include the main keyword naturally
- Keep it under 60 characters for SEO
- Make it specific and valuable to readers

Return ONLY the title text, nothing else.`

// blockTypes end with a newline in the plain-text rendering of a document.
var blockTypes = map[string]bool{
	"heading":    true,
	"paragraph":  true,
	"listItem":   true,
	"blockquote": true,
}

// ArticleInput is a request to generate an article.
type ArticleInput struct {
	Title               string
	PrimaryKeywordID    string
	SecondaryKeywordIDs []string
	ContentBriefing     string
	ReferenceContent    string
	WebsiteID           string
}

// ArticleUpdate carries the editable fields; nil leaves a field unchanged.
type ArticleUpdate struct {
	Title       *string
	Content     *string
	ContentJSON json.RawMessage
	Status      *string
}

// ArticleService generates articles from keywords and manages drafts.
type ArticleService struct {
	Store store.Store
	LLM   llm.Client
	Jobs  Enqueuer
}

// RegisterJobs installs the generation handler and its failure callback.
func (s *ArticleService) RegisterJobs(q jobs.Queue) {
	q.Register(jobs.KindArticleGenerate, s.handleGenerate, s.generateFailed)
}

// Create stores a GENERATING article and queues its generation.
func (s *ArticleService) Create(ctx context.Context, userID string, in ArticleInput) (domain.Article, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(in.Title) == "" || in.PrimaryKeywordID == "" {
		return domain.Article{}, ErrInvalidRequest
	}

	// 1. The primary keyword must belong to the user.
	if _, err := s.Store.Keywords().GetKeywordForUser(ctx, in.PrimaryKeywordID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Article{}, ErrPrimaryKeywordNotFound
		}
		return domain.Article{}, err
	}

	// 2. One article per primary keyword.
	_, err := s.Store.Articles().GetArticleByKeyword(ctx, userID, in.PrimaryKeywordID)
	if err == nil {
		return domain.Article{}, ErrArticleExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Article{}, err
	}

	// 3. Keep only the user's own secondary keywords.
	secondary := make([]string, 0, len(in.SecondaryKeywordIDs))
	for _, id := range in.SecondaryKeywordIDs {
		if id == in.PrimaryKeywordID {
			continue
		}
		if _, err := s.Store.Keywords().GetKeywordForUser(ctx, id, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return domain.Article{}, err
		}
		secondary = append(secondary, id)
	}

	now := time.Now().UTC()
	a := domain.Article{
		ID:                  idx.NewAt(now).String(),
		UserID:              userID,
		WebsiteID:           in.WebsiteID,
		PrimaryKeywordID:    in.PrimaryKeywordID,
		SecondaryKeywordIDs: secondary,
		Title:               strings.TrimSpace(in.Title),
		ContentBriefing:     in.ContentBriefing,
		ReferenceContent:    in.ReferenceContent,
		Status:              domain.ArticleGenerating,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.Store.Articles().CreateArticle(ctx, a); err != nil {
		log.Error("failed to create article", slog.Any("error", err))
		return domain.Article{}, err
	}

	// 4. Generate in the background.
	if err := s.Jobs.Enqueue(ctx, jobs.Task{Kind: jobs.KindArticleGenerate, EntityID: a.ID}); err != nil {
		log.Warn("failed to queue article generation", slog.String("article_id", a.ID), slog.Any("error", err))
		if err := s.Store.Articles().MarkArticleFailed(ctx, a.ID, err.Error()); err != nil {
			return domain.Article{}, err
		}
		a.Status = domain.ArticleFailed
		a.ErrorMessage = err.Error()
	}

	log.Info("article created",
		slog.String("article_id", a.ID),
		slog.Int("secondary_keywords", len(secondary)),
	)
	return a, nil
}

// RegenerateTitle asks the model for a new title for the keyword.
func (s *ArticleService) RegenerateTitle(ctx context.Context, userID, keywordID, extra string) (string, error) {
	k, err := s.Store.Keywords().GetKeywordForUser(ctx, keywordID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrKeywordNotFound
		}
		return "", err
	}

	var ctxLine string
	if extra = strings.TrimSpace(extra); extra != "" {
		ctxLine = "Additional context: " + extra + "\n"
	}
	resp, err := s.LLM.Complete(ctx, llm.Request{User: fmt.Sprintf(titlePrompt, k.Keyword, ctxLine)})
	if err != nil {
		slogx.FromContext(ctx).Error("title generation failed", slog.Any("error", err))
		return "", err
	}
	return strings.Trim(strings.TrimSpace(resp.Content), `"`), nil
}

// List returns the user's articles, newest first.
func (s *ArticleService) List(ctx context.Context, userID string) ([]domain.Article, error) {
	return s.Store.Articles().ListArticlesByUser(ctx, userID)
}

// Get returns one of the user's articles.
func (s *ArticleService) Get(ctx context.Context, userID, articleID string) (domain.Article, error) {
	a, err := s.Store.Articles().GetArticleForUser(ctx, articleID, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Article{}, ErrArticleNotFound
	}
	return a, err
}

// GetByKeyword returns the article for a primary keyword, or nil.
func (s *ArticleService) GetByKeyword(ctx context.Context, userID, keywordID string) (*domain.Article, error) {
	a, err := s.Store.Articles().GetArticleByKeyword(ctx, userID, keywordID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Update applies the provided fields. Status may only be set to DRAFT or
// PUBLISHED.
func (s *ArticleService) Update(ctx context.Context, userID, articleID string, in ArticleUpdate) (domain.Article, error) {
	a, err := s.Get(ctx, userID, articleID)
	if err != nil {
		return domain.Article{}, err
	}

	if in.Status != nil {
		st := domain.ArticleStatus(strings.ToUpper(strings.TrimSpace(*in.Status)))
		if st != domain.ArticleDraft && st != domain.ArticlePublished {
			return domain.Article{}, ErrInvalidArticleStatus
		}
		a.Status = st
	}
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Content != nil {
		a.Content = *in.Content
	}
	if in.ContentJSON != nil {
		if !gjson.ValidBytes(in.ContentJSON) {
			return domain.Article{}, ErrInvalidRequest
		}
		a.ContentJSON = in.ContentJSON
	}

	if err := s.Store.Articles().UpdateArticle(ctx, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Article{}, ErrArticleNotFound
		}
		return domain.Article{}, err
	}
	slogx.FromContext(ctx).Debug("article updated", slog.String("article_id", a.ID))
	return s.Get(ctx, userID, articleID)
}

// Delete removes one of the user's articles.
func (s *ArticleService) Delete(ctx context.Context, userID, articleID string) error {
	err := s.Store.Articles().DeleteArticle(ctx, articleID, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrArticleNotFound
	}
	return err
}

func (s *ArticleService) handleGenerate(ctx context.Context, t jobs.Task) error {
	log := slogx.FromContext(ctx).With(slog.String("article_id", t.EntityID))

	// 1. Load the article and its keywords.
	a, err := s.Store.Articles().GetArticleByID(ctx, t.EntityID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if a.Status != domain.ArticleGenerating {
		log.Debug("article no longer generating", slog.String("status", string(a.Status)))
		return nil
	}
	primary, err := s.Store.Keywords().GetKeywordByID(ctx, a.PrimaryKeywordID)
	if err != nil {
		return fmt.Errorf("load primary keyword: %w", err)
	}
	var secondary []string
	for _, id := range a.SecondaryKeywordIDs {
		k, err := s.Store.Keywords().GetKeywordByID(ctx, id)
		if err != nil {
			continue
		}
		secondary = append(secondary, k.Keyword)
	}

	// 2. Ask the model.
	resp, err := s.LLM.Complete(ctx, llm.Request{
		System:    articleSystemPrompt,
		User:      articlePrompt(a, primary.Keyword, secondary),
		MaxTokens: articleMaxTokens,
	})
	if err != nil {
		return fmt.Errorf("generate article: %w", err)
	}

	// 3. Store the document.
	doc, text := parseArticleReply(resp.Content)
	a.ContentJSON = doc
	a.Content = text
	a.PromptTokens = resp.PromptTokens
	a.CompletionTokens = resp.CompletionTokens
	if err := s.Store.Articles().SaveGeneratedArticle(ctx, a); err != nil {
		if errors.Is(err, store.ErrPreconditionFailed) {
			return nil
		}
		return err
	}

	log.Info("article generated",
		slog.Int("prompt_tokens", resp.PromptTokens),
		slog.Int("completion_tokens", resp.CompletionTokens),
	)
	return nil
}

func (s *ArticleService) generateFailed(ctx context.Context, t jobs.Task, cause error) {
	log := slogx.FromContext(ctx).With(slog.String("article_id", t.EntityID))
	msg := "Unknown error during generation"
	if cause != nil {
		msg = cause.Error()
	}
	if err := s.Store.Articles().MarkArticleFailed(ctx, t.EntityID, msg); err != nil {
		log.Error("failed to mark article failed", slog.Any("error", err))
		return
	}
	log.Warn("article generation failed", slog.String("reason", msg))
}

func articlePrompt(a domain.Article, primary string, secondary []string) string {
	var b strings.Builder
	b.WriteString("Generate an SEO-optimized article with the following details:\n\n")
	fmt.Fprintf(&b, "**Title:** %s\n\n", a.Title)
	fmt.Fprintf(&b, "**Primary Keyword:** %s\n", primary)
	if len(secondary) > 0 {
		fmt.Fprintf(&b, "**Secondary Keywords to incorporate:** %s\n", strings.Join(secondary, ", "))
	}
	fmt.Fprintf(&b, "\n**Content Briefing/Instructions:**\n%s\n", a.ContentBriefing)
	if ref := a.ReferenceContent; ref != "" {
		if r := []rune(ref); len(r) > maxReferenceChars {
			ref = string(r[:maxReferenceChars])
		}
		fmt.Fprintf(&b, "\n**Reference Content to draw from:**\n%s\n", ref)
	}
	b.WriteString(`
Generate a comprehensive, engaging article that:
1. Naturally incorporates the primary and secondary keywords
2. Is well-structured with clear headings and subheadings
3. Provides valuable, actionable information
4. Is optimized for search engines
5. Is at least 1500 words

Return the article in TipTap JSON format as specified.`)
	return b.String()
}

// parseArticleReply returns the TipTap document and its plain text. Replies
// that are not a JSON object are wrapped in a single paragraph.
func parseArticleReply(reply string) (json.RawMessage, string) {
	body := stripCodeFence(reply)
	if gjson.Valid(body) {
		if doc := gjson.Parse(body); doc.IsObject() {
			return json.RawMessage(body), tiptapText(doc)
		}
	}

	wrapped, _ := json.Marshal(map[string]any{
		"type": "doc",
		"content": []any{map[string]any{
			"type":    "paragraph",
			"content": []any{map[string]any{"type": "text", "text": reply}},
		}},
	})
	return wrapped, reply
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func tiptapText(node gjson.Result) string {
	var b strings.Builder
	writeTiptapText(&b, node)
	return b.String()
}

func writeTiptapText(b *strings.Builder, node gjson.Result) {
	b.WriteString(node.Get("text").String())
	node.Get("content").ForEach(func(_, child gjson.Result) bool {
		writeTiptapText(b, child)
		if blockTypes[child.Get("type").String()] {
			b.WriteByte('\n')
		}
		return true
	})
}
