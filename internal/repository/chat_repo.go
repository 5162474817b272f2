package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aicompliance/internal/model"
)

// ChatRepo handles MongoDB operations for chat sessions and messages
type ChatRepo interface {
	CreateSession(ctx context.Context, session *model.ChatSession) error
	GetSession(ctx context.Context, sessionID, userID string) (*model.ChatSession, error)
	GetSessions(ctx context.Context, userID string) ([]*model.ChatSession, error)
	TouchSession(ctx context.Context, sessionID string, messageDelta int) error
	DeleteSession(ctx context.Context, sessionID string) error

	InsertMessage(ctx context.Context, message *model.ChatMessage) error
	GetMessages(ctx context.Context, sessionID string) ([]*model.ChatMessage, error)
	DeleteMessages(ctx context.Context, sessionID string) error

	CountSessions(ctx context.Context, userID string) (int64, error)
	CountMessages(ctx context.Context, userID string) (int64, error)
}

type chatRepo struct {
	sessions *mongo.Collection
	messages *mongo.Collection
}

// NewChatRepo creates a new chat repository
func NewChatRepo(db *mongo.Database) ChatRepo {
	return &chatRepo{
		sessions: db.Collection("chat_sessions"),
		messages: db.Collection("chat_messages"),
	}
}

func (r *chatRepo) CreateSession(ctx context.Context, session *model.ChatSession) error {
	_, err := r.sessions.InsertOne(ctx, session)
	return err
}

func (r *chatRepo) GetSession(ctx context.Context, sessionID, userID string) (*model.ChatSession, error) {
	var session model.ChatSession
	err := r.sessions.FindOne(ctx, bson.M{"id": sessionID, "user_id": userID}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *chatRepo) GetSessions(ctx context.Context, userID string) ([]*model.ChatSession, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(100)

	cursor, err := r.sessions.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.ChatSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *chatRepo) TouchSession(ctx context.Context, sessionID string, messageDelta int) error {
	_, err := r.sessions.UpdateOne(ctx, bson.M{"id": sessionID}, bson.M{
		"$set": bson.M{"updated_at": time.Now().UTC()},
		"$inc": bson.M{"message_count": messageDelta},
	})
	return err
}

func (r *chatRepo) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.sessions.DeleteOne(ctx, bson.M{"id": sessionID})
	return err
}

func (r *chatRepo) InsertMessage(ctx context.Context, message *model.ChatMessage) error {
	_, err := r.messages.InsertOne(ctx, message)
	return err
}

func (r *chatRepo) GetMessages(ctx context.Context, sessionID string) ([]*model.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(1000)

	cursor, err := r.messages.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*model.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *chatRepo) DeleteMessages(ctx context.Context, sessionID string) error {
	_, err := r.messages.DeleteMany(ctx, bson.M{"session_id": sessionID})
	return err
}

func (r *chatRepo) CountSessions(ctx context.Context, userID string) (int64, error) {
	return r.sessions.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *chatRepo) CountMessages(ctx context.Context, userID string) (int64, error) {
	return r.messages.CountDocuments(ctx, bson.M{"user_id": userID})
}
