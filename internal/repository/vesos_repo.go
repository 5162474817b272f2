package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aicompliance/internal/model"
)

// VESOSRepo handles MongoDB operations for VESOS analyses
type VESOSRepo interface {
	Create(ctx context.Context, analysis *model.VESOSAnalysis) error
	List(ctx context.Context, organization string, sector model.Sector, limit int64) ([]*model.VESOSAnalysis, error)
}

type vesosRepo struct {
	collection *mongo.Collection
}

// NewVESOSRepo creates a new VESOS analysis repository
func NewVESOSRepo(db *mongo.Database) VESOSRepo {
	return &vesosRepo{
		collection: db.Collection("vesos_analyses"),
	}
}

func (r *vesosRepo) Create(ctx context.Context, analysis *model.VESOSAnalysis) error {
	_, err := r.collection.InsertOne(ctx, analysis)
	return err
}

func (r *vesosRepo) List(ctx context.Context, organization string, sector model.Sector, limit int64) ([]*model.VESOSAnalysis, error) {
	query := bson.M{"status": "active"}
	if organization != "" {
		query["organization"] = organization
	}
	if sector != "" {
		query["sector"] = sector
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var analyses []*model.VESOSAnalysis
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}
