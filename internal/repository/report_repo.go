package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"aicompliance/internal/model"
)

// ReportRepo handles MongoDB operations for compliance reports
type ReportRepo interface {
	Create(ctx context.Context, report *model.ComplianceReport) error
	GetByID(ctx context.Context, id, userID string) (*model.ComplianceReport, error)
}

type reportRepo struct {
	collection *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		collection: db.Collection("reports"),
	}
}

func (r *reportRepo) Create(ctx context.Context, report *model.ComplianceReport) error {
	_, err := r.collection.InsertOne(ctx, report)
	return err
}

func (r *reportRepo) GetByID(ctx context.Context, id, userID string) (*model.ComplianceReport, error) {
	var report model.ComplianceReport
	err := r.collection.FindOne(ctx, bson.M{"id": id, "user_id": userID}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
