package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"aicompliance/internal/cache"
	"aicompliance/internal/engine"
	"aicompliance/internal/model"
	"aicompliance/internal/repository"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

// AssessmentService runs the risk classifier and persists its results
type AssessmentService struct {
	assessments repository.AssessmentRepo
	dashboard   cache.DashboardCache
	broadcaster Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(assessments repository.AssessmentRepo, dashboard cache.DashboardCache, broadcaster Broadcaster) *AssessmentService {
	return &AssessmentService{
		assessments: assessments,
		dashboard:   dashboard,
		broadcaster: broadcaster,
	}
}

// Create scores a questionnaire and stores the resulting assessment.
// Assessments are write-once: re-submitting creates a new record.
func (s *AssessmentService) Create(ctx context.Context, user *model.User, assessmentType string, responses model.QuestionnaireResponse) (*model.Assessment, error) {
	if assessmentType == "" {
		assessmentType = "initial"
	}

	result := engine.Classify(responses)

	now := time.Now().UTC()
	assessment := &model.Assessment{
		ID:               uuid.New().String(),
		UserID:           user.ID,
		CompanyName:      user.CompanyName,
		AssessmentType:   assessmentType,
		Responses:        responses,
		RiskScore:        result.RiskScore,
		RiskLevel:        result.RiskLevel,
		Recommendations:  result.Recommendations,
		ComplianceStatus: result.ComplianceStatus,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.assessments.Create(ctx, assessment); err != nil {
		return nil, err
	}

	// Stats changed, drop the cached dashboard
	if err := s.dashboard.Invalidate(ctx, user.ID); err != nil {
		log.Printf("Failed to invalidate dashboard cache for user %s: %v", user.ID, err)
	}

	s.broadcaster.BroadcastUser(user.ID, "assessment_scored", map[string]interface{}{
		"assessment_id":     assessment.ID,
		"risk_score":        assessment.RiskScore,
		"risk_level":        assessment.RiskLevel,
		"compliance_status": assessment.ComplianceStatus,
	})

	return assessment, nil
}

// Get returns one of the user's assessments
func (s *AssessmentService) Get(ctx context.Context, id, userID string) (*model.Assessment, error) {
	assessment, err := s.assessments.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

// List returns the user's assessments, newest first
func (s *AssessmentService) List(ctx context.Context, userID string, limit int64) ([]*model.Assessment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.assessments.GetByUserID(ctx, userID, limit)
}

// DashboardStats summarizes the user's assessment history. The summary is
// cached in Redis and recomputed after a cache miss.
func (s *AssessmentService) DashboardStats(ctx context.Context, userID string) (*model.DashboardStats, error) {
	cached, err := s.dashboard.Get(ctx, userID)
	if err != nil {
		log.Printf("Dashboard cache read failed for user %s: %v", userID, err)
	}
	if cached != nil {
		return cached, nil
	}

	assessments, err := s.assessments.GetByUserID(ctx, userID, 100)
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{
		TotalAssessments: len(assessments),
		ComplianceStatus: "not_assessed",
	}
	if len(assessments) > 0 {
		latest := assessments[0]
		stats.LatestRiskScore = latest.RiskScore
		stats.ComplianceStatus = string(latest.ComplianceStatus)
		stats.RecommendationsCount = len(latest.Recommendations)
	}

	if err := s.dashboard.Set(ctx, userID, stats); err != nil {
		log.Printf("Dashboard cache write failed for user %s: %v", userID, err)
	}

	return stats, nil
}
