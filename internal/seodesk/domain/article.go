package domain

import (
	"encoding/json"
	"time"
)

type ArticleStatus string

const (
	ArticleGenerating ArticleStatus = "GENERATING"
	ArticleDraft      ArticleStatus = "DRAFT"
	ArticlePublished  ArticleStatus = "PUBLISHED"
	ArticleFailed     ArticleStatus = "FAILED"
)

type Article struct {
	ID                  string
	UserID              string
	WebsiteID           string
	PrimaryKeywordID    string
	SecondaryKeywordIDs []string
	Title               string
	ContentBriefing     string
	ReferenceContent    string
	Content             string
	ContentJSON         json.RawMessage // TipTap document
	Status              ArticleStatus
	ErrorMessage        string
	PromptTokens        int
	CompletionTokens    int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
