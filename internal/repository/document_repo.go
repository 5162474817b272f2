package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aicompliance/internal/model"
)

// DocumentRepo handles MongoDB operations for the regulatory corpus chunks
type DocumentRepo interface {
	Search(ctx context.Context, query string, k int64, category string) ([]*model.Document, error)
	Categories(ctx context.Context) ([]string, error)
	CountChunks(ctx context.Context) (int64, error)
	CountDocuments(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type documentRepo struct {
	collection *mongo.Collection
}

// NewDocumentRepo creates a new document repository
func NewDocumentRepo(db *mongo.Database) DocumentRepo {
	return &documentRepo{
		collection: db.Collection("documents"),
	}
}

func (r *documentRepo) Search(ctx context.Context, query string, k int64, category string) ([]*model.Document, error) {
	filter := bson.M{"$text": bson.M{"$search": query}}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}).
		SetLimit(k)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*model.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepo) Categories(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *documentRepo) CountChunks(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *documentRepo) CountDocuments(ctx context.Context) (int64, error) {
	values, err := r.collection.Distinct(ctx, "doc_id", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(values)), nil
}

func (r *documentRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "content", Value: "text"},
		},
	})
	return err
}
