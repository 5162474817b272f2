package model

import "time"

// QuestionnaireResponse maps question keys to submitted answers. The question
// set is open-ended: the classifier reacts to the keys it knows and ignores the
// rest. Values are usually strings ("yes", "no", "partial", "sensitive", ...)
// but the type is left open because the intake form may send numbers or bools.
type QuestionnaireResponse map[string]any

// RiskLevel is the EU AI Act risk classification of an assessed system.
type RiskLevel string

const (
	RiskMinimal      RiskLevel = "minimal"
	RiskLimited      RiskLevel = "limited"
	RiskHigh         RiskLevel = "high"
	RiskUnacceptable RiskLevel = "unacceptable"
)

// ComplianceStatus is derived from the risk level.
type ComplianceStatus string

const (
	StatusCompliant          ComplianceStatus = "compliant"
	StatusPartiallyCompliant ComplianceStatus = "partially_compliant"
	StatusNonCompliant       ComplianceStatus = "non_compliant"
)

// RiskAssessmentResult is the immutable output of the risk classifier.
// Recommendations keep rule evaluation order; duplicates are allowed.
type RiskAssessmentResult struct {
	RiskScore        float64          `json:"risk_score" bson:"risk_score"`
	RiskLevel        RiskLevel        `json:"risk_level" bson:"risk_level"`
	ComplianceStatus ComplianceStatus `json:"compliance_status" bson:"compliance_status"`
	Recommendations  []string         `json:"recommendations" bson:"recommendations"`
}

// Assessment is a persisted questionnaire submission plus its scored result.
// Results are computed once at creation and never mutated; re-evaluation
// creates a new assessment.
type Assessment struct {
	ID               string                `json:"id" bson:"id"`
	UserID           string                `json:"user_id" bson:"user_id"`
	CompanyName      string                `json:"company_name" bson:"company_name"`
	AssessmentType   string                `json:"assessment_type" bson:"assessment_type"` // "initial", "follow_up"
	Responses        QuestionnaireResponse `json:"responses" bson:"responses"`
	RiskScore        float64               `json:"risk_score" bson:"risk_score"`
	RiskLevel        RiskLevel             `json:"risk_level" bson:"risk_level"`
	Recommendations  []string              `json:"recommendations" bson:"recommendations"`
	ComplianceStatus ComplianceStatus      `json:"compliance_status" bson:"compliance_status"`
	CreatedAt        time.Time             `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at" bson:"updated_at"`
}

// DashboardStats summarizes a user's assessment history.
type DashboardStats struct {
	TotalAssessments     int     `json:"total_assessments"`
	LatestRiskScore      float64 `json:"latest_risk_score"`
	ComplianceStatus     string  `json:"compliance_status"`
	RecommendationsCount int     `json:"recommendations_count"`
}
