package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aicompliance/internal/model"
)

// NewsRepo handles MongoDB operations for regulatory news items
type NewsRepo interface {
	Insert(ctx context.Context, item *model.NewsItem) error
	Exists(ctx context.Context, id string) (bool, error)
	Recent(ctx context.Context, limit int64, category string, days int) ([]*model.NewsItem, error)
	Search(ctx context.Context, query string, limit int64) ([]*model.NewsItem, error)
	ByTags(ctx context.Context, tags []string, limit int64) ([]*model.NewsItem, error)
	EnsureIndexes(ctx context.Context) error
}

type newsRepo struct {
	collection *mongo.Collection
}

// NewNewsRepo creates a new news repository
func NewNewsRepo(db *mongo.Database) NewsRepo {
	return &newsRepo{
		collection: db.Collection("news_items"),
	}
}

func (r *newsRepo) Insert(ctx context.Context, item *model.NewsItem) error {
	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *newsRepo) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *newsRepo) Recent(ctx context.Context, limit int64, category string, days int) ([]*model.NewsItem, error) {
	query := bson.M{
		"scraped_at": bson.M{"$gte": time.Now().UTC().AddDate(0, 0, -days)},
	}
	if category != "" {
		query["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: "relevance_score", Value: -1},
			{Key: "scraped_at", Value: -1},
		}).
		SetLimit(limit)

	return r.find(ctx, query, opts)
}

func (r *newsRepo) Search(ctx context.Context, query string, limit int64) ([]*model.NewsItem, error) {
	opts := options.Find().
		SetSort(bson.D{
			{Key: "score", Value: bson.M{"$meta": "textScore"}},
			{Key: "relevance_score", Value: -1},
		}).
		SetLimit(limit)

	return r.find(ctx, bson.M{"$text": bson.M{"$search": query}}, opts)
}

func (r *newsRepo) ByTags(ctx context.Context, tags []string, limit int64) ([]*model.NewsItem, error) {
	opts := options.Find().
		SetSort(bson.D{
			{Key: "relevance_score", Value: -1},
			{Key: "scraped_at", Value: -1},
		}).
		SetLimit(limit)

	return r.find(ctx, bson.M{"tags": bson.M{"$in": tags}}, opts)
}

func (r *newsRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "summary", Value: "text"},
				{Key: "ai_summary", Value: "text"},
			},
		},
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (r *newsRepo) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*model.NewsItem, error) {
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.NewsItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
