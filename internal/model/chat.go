package model

import "time"

// ChatSession groups a user's messages with the compliance assistant
type ChatSession struct {
	ID           string    `json:"id" bson:"id"`
	UserID       string    `json:"user_id" bson:"user_id"`
	Title        string    `json:"title" bson:"title"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
	MessageCount int       `json:"message_count" bson:"message_count"`
}

// ChatMessage is one turn of a session, either role "user" or "assistant"
type ChatMessage struct {
	ID        string          `json:"id" bson:"id"`
	SessionID string          `json:"session_id" bson:"session_id"`
	UserID    string          `json:"user_id" bson:"user_id"`
	Role      string          `json:"role" bson:"role"`
	Content   string          `json:"content" bson:"content"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	Metadata  MessageMetadata `json:"metadata" bson:"metadata"`
}

// MessageMetadata records retrieval context for a turn
type MessageMetadata struct {
	Category          string `json:"category,omitempty" bson:"category,omitempty"`
	RelevantDocsCount int    `json:"relevant_docs_count" bson:"relevant_docs_count"`
}

// ChatStats summarizes a user's assistant usage
type ChatStats struct {
	TotalSessions int `json:"total_sessions"`
	TotalMessages int `json:"total_messages"`
}
