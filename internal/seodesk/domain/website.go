package domain

import "time"

type ScrapingStatus string

const (
	ScrapingPending    ScrapingStatus = "pending"
	ScrapingProcessing ScrapingStatus = "processing"
	ScrapingCompleted  ScrapingStatus = "completed"
	ScrapingFailed     ScrapingStatus = "failed"
)

// WebsiteMeta is the structured part of a scrape, stored as JSON.
type WebsiteMeta struct {
	Title    string   `json:"title,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Favicon  string   `json:"favicon,omitempty"`
	OGImage  string   `json:"ogImage,omitempty"`
	Headings []string `json:"headings,omitempty"`
	Links    []string `json:"links,omitempty"`
}

type Website struct {
	ID             string
	UserID         string
	URL            string
	Name           string
	Description    string
	ScrapedContent string
	ScrapedMeta    *WebsiteMeta
	ScrapingStatus ScrapingStatus
	ScrapingError  string
	ScrapedAt      *time.Time
	IsPrimary      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
