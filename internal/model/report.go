package model

import "time"

// ReportData is the rendered content of a compliance report
type ReportData struct {
	CompanyName      string           `json:"company_name" bson:"company_name"`
	AssessmentDate   string           `json:"assessment_date" bson:"assessment_date"`
	RiskScore        float64          `json:"risk_score" bson:"risk_score"`
	RiskLevel        RiskLevel        `json:"risk_level" bson:"risk_level"`
	ComplianceStatus ComplianceStatus `json:"compliance_status" bson:"compliance_status"`
	Recommendations  []string         `json:"recommendations" bson:"recommendations"`
	ExecutiveSummary string           `json:"executive_summary" bson:"executive_summary"`
	NextSteps        []string         `json:"next_steps" bson:"next_steps"`
}

// ComplianceReport is a stored report generated from an assessment
type ComplianceReport struct {
	ID           string     `json:"id" bson:"id"`
	AssessmentID string     `json:"assessment_id" bson:"assessment_id"`
	UserID       string     `json:"user_id" bson:"user_id"`
	ReportData   ReportData `json:"report_data" bson:"report_data"`
	GeneratedAt  time.Time  `json:"generated_at" bson:"generated_at"`
}
