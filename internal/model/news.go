package model

import "time"

// NewsCandidate is a raw item as returned by a source fetcher, before
// dedupe, scoring and summarization.
type NewsCandidate struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Summary    string `json:"summary"`
	Source     string `json:"source"`
	Category   string `json:"category"`
	Language   string `json:"language"`
	SearchTerm string `json:"search_term,omitempty"`
}

// NewsItem is a persisted regulatory news entry. The ID is the MD5 hex of the
// URL so re-collection is idempotent.
type NewsItem struct {
	ID             string    `json:"id" bson:"id"`
	Title          string    `json:"title" bson:"title"`
	URL            string    `json:"url" bson:"url"`
	Summary        string    `json:"summary" bson:"summary"`
	AISummary      string    `json:"ai_summary" bson:"ai_summary"`
	Source         string    `json:"source" bson:"source"`
	Category       string    `json:"category" bson:"category"`
	Language       string    `json:"language" bson:"language"`
	ScrapedAt      time.Time `json:"scraped_at" bson:"scraped_at"`
	RelevanceScore float64   `json:"relevance_score" bson:"relevance_score"`
	Tags           []string  `json:"tags" bson:"tags"`
}
