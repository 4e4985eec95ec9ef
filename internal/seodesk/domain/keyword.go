package domain

import "time"

type Competition string

const (
	CompetitionLow    Competition = "low"
	CompetitionMedium Competition = "medium"
	CompetitionHigh   Competition = "high"
)

// ParseCompetition normalises s, returning ok=false for unknown values.
func ParseCompetition(s string) (Competition, bool) {
	switch c := Competition(s); c {
	case CompetitionLow, CompetitionMedium, CompetitionHigh:
		return c, true
	}
	return "", false
}

// KeywordAnalysis is the model's assessment of a keyword.
type KeywordAnalysis struct {
	Competition      Competition `json:"competition"`
	CompetitionScore int         `json:"competitionScore"`
	Volume           int         `json:"volume"`
	Difficulty       string      `json:"difficulty"`
	Trend            string      `json:"trend"`
	RecommendedTitle string      `json:"recommendedTitle"`
}

type Keyword struct {
	ID               string
	UserID           string
	WebsiteID        string
	Keyword          string
	Competition      Competition
	Volume           int
	RecommendedTitle string
	Analysis         *KeywordAnalysis
	IsAnalyzed       bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
