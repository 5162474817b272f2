package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aicompliance/internal/model"
	"aicompliance/internal/repository"
)

var ErrReportNotFound = errors.New("report not found")

// ReportService generates compliance reports from stored assessments
type ReportService struct {
	reports     repository.ReportRepo
	assessments repository.AssessmentRepo
}

// NewReportService creates a new report service
func NewReportService(reports repository.ReportRepo, assessments repository.AssessmentRepo) *ReportService {
	return &ReportService{
		reports:     reports,
		assessments: assessments,
	}
}

// Generate renders and stores a compliance report for one assessment
func (s *ReportService) Generate(ctx context.Context, assessmentID, userID string) (*model.ComplianceReport, error) {
	assessment, err := s.assessments.GetByID(ctx, assessmentID, userID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}

	nextSteps := assessment.Recommendations
	if len(nextSteps) > 3 {
		nextSteps = nextSteps[:3]
	}

	report := &model.ComplianceReport{
		ID:           uuid.New().String(),
		AssessmentID: assessment.ID,
		UserID:       userID,
		ReportData: model.ReportData{
			CompanyName:      assessment.CompanyName,
			AssessmentDate:   assessment.CreatedAt.Format(time.RFC3339),
			RiskScore:        assessment.RiskScore,
			RiskLevel:        assessment.RiskLevel,
			ComplianceStatus: assessment.ComplianceStatus,
			Recommendations:  assessment.Recommendations,
			ExecutiveSummary: fmt.Sprintf(
				"Based on the AI compliance assessment, %s has a risk score of %.1f/10.0 and is classified as %s risk according to EU AI Act regulations.",
				assessment.CompanyName, assessment.RiskScore, assessment.RiskLevel,
			),
			NextSteps: nextSteps,
		},
		GeneratedAt: time.Now().UTC(),
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// Get returns one of the user's reports
func (s *ReportService) Get(ctx context.Context, id, userID string) (*model.ComplianceReport, error) {
	report, err := s.reports.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}
