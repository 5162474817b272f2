package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicompliance/internal/model"
	"aicompliance/internal/service"
)

type memoryAssessmentRepo struct {
	items map[string]*model.Assessment
}

func (r *memoryAssessmentRepo) Create(_ context.Context, a *model.Assessment) error {
	r.items[a.ID] = a
	return nil
}

func (r *memoryAssessmentRepo) GetByID(_ context.Context, id, userID string) (*model.Assessment, error) {
	a := r.items[id]
	if a == nil || a.UserID != userID {
		return nil, nil
	}
	return a, nil
}

func (r *memoryAssessmentRepo) GetByUserID(_ context.Context, userID string, _ int64) ([]*model.Assessment, error) {
	var out []*model.Assessment
	for _, a := range r.items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memoryReportRepo struct {
	items map[string]*model.ComplianceReport
}

func (r *memoryReportRepo) Create(_ context.Context, report *model.ComplianceReport) error {
	r.items[report.ID] = report
	return nil
}

func (r *memoryReportRepo) GetByID(_ context.Context, id, userID string) (*model.ComplianceReport, error) {
	report := r.items[id]
	if report == nil || report.UserID != userID {
		return nil, nil
	}
	return report, nil
}

func TestGenerateReportRendersAssessment(t *testing.T) {
	assessments := &memoryAssessmentRepo{items: map[string]*model.Assessment{}}
	reports := &memoryReportRepo{items: map[string]*model.ComplianceReport{}}
	svc := service.NewReportService(reports, assessments)

	assessment := &model.Assessment{
		ID:               "a-1",
		UserID:           "u-1",
		CompanyName:      "HealthTech SL",
		RiskScore:        7.25,
		RiskLevel:        model.RiskHigh,
		ComplianceStatus: model.StatusNonCompliant,
		Recommendations:  []string{"rec one", "rec two", "rec three", "rec four"},
		CreatedAt:        time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, assessments.Create(context.Background(), assessment))

	report, err := svc.Generate(context.Background(), "a-1", "u-1")
	require.NoError(t, err)

	assert.Equal(t, "a-1", report.AssessmentID)
	assert.Equal(t, "HealthTech SL", report.ReportData.CompanyName)
	assert.Equal(t, "2025-03-10T09:30:00Z", report.ReportData.AssessmentDate)
	assert.Equal(t,
		"Based on the AI compliance assessment, HealthTech SL has a risk score of 7.2/10.0 and is classified as high risk according to EU AI Act regulations.",
		report.ReportData.ExecutiveSummary)
	assert.Equal(t, []string{"rec one", "rec two", "rec three"}, report.ReportData.NextSteps)
	assert.Len(t, report.ReportData.Recommendations, 4)
}

func TestGenerateReportUnknownAssessment(t *testing.T) {
	svc := service.NewReportService(
		&memoryReportRepo{items: map[string]*model.ComplianceReport{}},
		&memoryAssessmentRepo{items: map[string]*model.Assessment{}},
	)

	_, err := svc.Generate(context.Background(), "missing", "u-1")
	assert.ErrorIs(t, err, service.ErrAssessmentNotFound)
}

func TestGenerateReportScopedToUser(t *testing.T) {
	assessments := &memoryAssessmentRepo{items: map[string]*model.Assessment{
		"a-1": {ID: "a-1", UserID: "owner", Recommendations: []string{"rec"}},
	}}
	svc := service.NewReportService(&memoryReportRepo{items: map[string]*model.ComplianceReport{}}, assessments)

	_, err := svc.Generate(context.Background(), "a-1", "someone-else")
	assert.ErrorIs(t, err, service.ErrAssessmentNotFound)
}

func TestGetReportRoundtrip(t *testing.T) {
	assessments := &memoryAssessmentRepo{items: map[string]*model.Assessment{
		"a-1": {ID: "a-1", UserID: "u-1", CompanyName: "Insurtech SL", Recommendations: []string{"rec"}},
	}}
	reports := &memoryReportRepo{items: map[string]*model.ComplianceReport{}}
	svc := service.NewReportService(reports, assessments)

	generated, err := svc.Generate(context.Background(), "a-1", "u-1")
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), generated.ID, "u-1")
	require.NoError(t, err)
	assert.Equal(t, generated.ID, fetched.ID)

	_, err = svc.Get(context.Background(), generated.ID, "other")
	assert.ErrorIs(t, err, service.ErrReportNotFound)
}
