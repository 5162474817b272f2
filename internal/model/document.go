package model

import "time"

// Document is a chunk of the regulatory corpus used by the assistant
type Document struct {
	ID        string    `json:"id" bson:"id"`
	DocID     string    `json:"doc_id" bson:"doc_id"` // source document identifier
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Category  string    `json:"category" bson:"category"` // e.g. "ai_regulation", "medical_devices"
	Source    string    `json:"source" bson:"source"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// DocumentMatch is one retrieval hit
type DocumentMatch struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
	Score    float64        `json:"score,omitempty"`
}

// DocumentStats describes the state of the corpus
type DocumentStats struct {
	TotalChunks    int               `json:"total_chunks"`
	TotalDocuments int               `json:"total_documents"`
	Categories     []string          `json:"categories"`
	LastUpdates    map[string]string `json:"last_updates"`
}
