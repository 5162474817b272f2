package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"aicompliance/internal/engine"
	"aicompliance/internal/model"
	"aicompliance/internal/repository"
)

// VESOSService evaluates project viability and persists the analyses
type VESOSService struct {
	analyses repository.VESOSRepo
}

// NewVESOSService creates a new VESOS service
func NewVESOSService(analyses repository.VESOSRepo) *VESOSService {
	return &VESOSService{
		analyses: analyses,
	}
}

// Evaluate validates the input, runs the scoring engine and stores the
// analysis. Validation errors are returned as *model.ValidationError.
func (s *VESOSService) Evaluate(ctx context.Context, in model.VESOSInput) (*model.VESOSAnalysis, error) {
	result, err := engine.Calculate(in)
	if err != nil {
		return nil, err
	}

	analysis := &model.VESOSAnalysis{
		ID:              uuid.New().String(),
		ProjectID:       in.ProjectID,
		ProjectName:     in.ProjectName,
		Organization:    in.Organization,
		Sector:          in.Sector,
		VESOSScore:      result.VESOSScore,
		Recommendation:  result.Recommendation,
		RiskLevel:       result.RiskLevel,
		ComplianceScore: result.ComplianceScore,
		Input:           in,
		Result:          *result,
		CreatedAt:       time.Now().UTC(),
		Status:          "active",
	}

	if err := s.analyses.Create(ctx, analysis); err != nil {
		return nil, err
	}

	return analysis, nil
}

// List returns stored analyses, newest first, optionally filtered by
// organization and sector
func (s *VESOSService) List(ctx context.Context, organization string, sector model.Sector, limit int64) ([]*model.VESOSAnalysis, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.analyses.List(ctx, organization, sector, limit)
}

// SectorProfile returns the regulatory profile for a sector
func (s *VESOSService) SectorProfile(sector model.Sector) model.SectorProfile {
	return engine.SectorAnalysis(sector)
}
