package model

import (
	"fmt"
	"time"
)

// Sector identifies the regulated vertical a project belongs to.
type Sector string

const (
	SectorDigitalHealth Sector = "digital_health"
	SectorInsurtech     Sector = "insurtech"
)

// Recommendation is the ternary outcome of a VESOS evaluation.
type Recommendation string

const (
	RecommendEscalar Recommendation = "ESCALAR" // scale up
	RecommendIterar  Recommendation = "ITERAR"  // iterate
	RecommendDetener Recommendation = "DETENER" // stop
)

// RiskBand classifies the aggregated project risk.
type RiskBand string

const (
	RiskBandLow    RiskBand = "LOW"
	RiskBandMedium RiskBand = "MEDIUM"
	RiskBandHigh   RiskBand = "HIGH"
)

// UtilityIndicators hold technical (UT) and aspirational (UA) utility, 0-10.
type UtilityIndicators struct {
	TechnicalUtility    float64 `json:"technical_utility" bson:"technical_utility"`
	AspirationalUtility float64 `json:"aspirational_utility" bson:"aspirational_utility"`
}

// FeasibilityFactors hold the four weighted feasibility dimensions, each 0-10.
type FeasibilityFactors struct {
	TechnologicalMaturity float64 `json:"technological_maturity" bson:"technological_maturity"`
	BudgetAvailability    float64 `json:"budget_availability" bson:"budget_availability"`
	TeamCompetence        float64 `json:"team_competence" bson:"team_competence"`
	RegulatoryClarity     float64 `json:"regulatory_clarity" bson:"regulatory_clarity"`
}

// RiskEntry is one probability x impact risk matrix row.
type RiskEntry struct {
	Probability        float64  `json:"probability" bson:"probability"` // 0-1
	Impact             float64  `json:"impact" bson:"impact"`           // 0-10
	MitigationMeasures []string `json:"mitigation_measures,omitempty" bson:"mitigation_measures,omitempty"`
}

// VESOSInput is the full project descriptor for a VESOS evaluation.
type VESOSInput struct {
	ProjectID    string `json:"project_id" bson:"project_id"`
	ProjectName  string `json:"project_name" bson:"project_name"`
	Organization string `json:"organization" bson:"organization"`
	Sector       Sector `json:"sector" bson:"sector"`

	Utility     UtilityIndicators  `json:"utility" bson:"utility"`
	Feasibility FeasibilityFactors `json:"feasibility" bson:"feasibility"`

	// Cost in euros, must be positive
	Cost float64 `json:"cost" bson:"cost"`

	Risks []RiskEntry `json:"risks" bson:"risks"`

	// Time in months, must be positive
	TimeMonths float64 `json:"time_months" bson:"time_months"`

	ProblemStatement       string   `json:"problem_statement" bson:"problem_statement"`
	ExpectedUsers          int      `json:"expected_users" bson:"expected_users"`
	ComplianceRequirements []string `json:"compliance_requirements" bson:"compliance_requirements"`
}

// ValidationError reports the first input field found outside its declared
// range. Out-of-range values are rejected, never clamped.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func checkRange(field string, value, min, max float64) *ValidationError {
	if value < min || value > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%g is outside [%g, %g]", value, min, max),
		}
	}
	return nil
}

// Validate checks every bounded field of the input. It returns a
// *ValidationError naming the offending field, or nil.
func (in *VESOSInput) Validate() error {
	if err := checkRange("utility.technical_utility", in.Utility.TechnicalUtility, 0, 10); err != nil {
		return err
	}
	if err := checkRange("utility.aspirational_utility", in.Utility.AspirationalUtility, 0, 10); err != nil {
		return err
	}
	if err := checkRange("feasibility.technological_maturity", in.Feasibility.TechnologicalMaturity, 0, 10); err != nil {
		return err
	}
	if err := checkRange("feasibility.budget_availability", in.Feasibility.BudgetAvailability, 0, 10); err != nil {
		return err
	}
	if err := checkRange("feasibility.team_competence", in.Feasibility.TeamCompetence, 0, 10); err != nil {
		return err
	}
	if err := checkRange("feasibility.regulatory_clarity", in.Feasibility.RegulatoryClarity, 0, 10); err != nil {
		return err
	}
	if in.Cost <= 0 {
		return &ValidationError{Field: "cost", Message: "must be positive"}
	}
	if in.TimeMonths <= 0 {
		return &ValidationError{Field: "time_months", Message: "must be positive"}
	}
	for i, r := range in.Risks {
		if err := checkRange(fmt.Sprintf("risks[%d].probability", i), r.Probability, 0, 1); err != nil {
			return err
		}
		if err := checkRange(fmt.Sprintf("risks[%d].impact", i), r.Impact, 0, 10); err != nil {
			return err
		}
	}
	// An unknown sector is not an error: downstream lookups fall back to
	// neutral defaults.
	return nil
}

// ConfidenceInterval is the heuristic certainty band around a VESOS score.
// It is an approximation keyed to the weakest of feasibility and compliance,
// not a statistical estimator.
type ConfidenceInterval struct {
	LowerBound      float64 `json:"lower_bound" bson:"lower_bound"`
	UpperBound      float64 `json:"upper_bound" bson:"upper_bound"`
	ConfidenceLevel float64 `json:"confidence_level" bson:"confidence_level"`
}

// ComponentBreakdown echoes the raw inputs inside the detailed analysis.
type ComponentBreakdown struct {
	TechnicalUtility      float64 `json:"technical_utility" bson:"technical_utility"`
	AspirationalUtility   float64 `json:"aspirational_utility" bson:"aspirational_utility"`
	TechnologicalMaturity float64 `json:"technological_maturity" bson:"technological_maturity"`
	BudgetAvailability    float64 `json:"budget_availability" bson:"budget_availability"`
	TeamCompetence        float64 `json:"team_competence" bson:"team_competence"`
	RegulatoryClarity     float64 `json:"regulatory_clarity" bson:"regulatory_clarity"`
}

// SectorProfile is the static per-sector analysis lookup.
type SectorProfile struct {
	KeyRegulations  []string `json:"key_regulations" bson:"key_regulations"`
	CriticalFactors []string `json:"critical_factors" bson:"critical_factors"`
	TypicalRisks    []string `json:"typical_risks" bson:"typical_risks"`
	SuccessMetrics  []string `json:"success_metrics" bson:"success_metrics"`
}

// DetailedAnalysis bundles every sub-score with its inputs so a reviewer can
// reproduce the composite by hand.
type DetailedAnalysis struct {
	UtilityScore       float64            `json:"utility_score" bson:"utility_score"`
	FeasibilityScore   float64            `json:"feasibility_score" bson:"feasibility_score"`
	RiskScore          float64            `json:"risk_score" bson:"risk_score"`
	ComplianceScore    float64            `json:"compliance_score" bson:"compliance_score"`
	CostFactor         float64            `json:"cost_factor" bson:"cost_factor"`
	TimeFactor         float64            `json:"time_factor" bson:"time_factor"`
	ComponentBreakdown ComponentBreakdown `json:"component_breakdown" bson:"component_breakdown"`
	SectorAnalysis     SectorProfile      `json:"sector_specific_analysis" bson:"sector_specific_analysis"`
	ComplianceGaps     []string           `json:"compliance_gaps" bson:"compliance_gaps"`
}

// VESOSResult is the immutable output of a VESOS evaluation.
type VESOSResult struct {
	VESOSScore         float64            `json:"vesos_score" bson:"vesos_score"`
	Recommendation     Recommendation     `json:"recommendation" bson:"recommendation"`
	ConfidenceInterval ConfidenceInterval `json:"confidence_interval" bson:"confidence_interval"`
	DetailedAnalysis   DetailedAnalysis   `json:"detailed_analysis" bson:"detailed_analysis"`
	RiskLevel          RiskBand           `json:"risk_level" bson:"risk_level"`
	ComplianceScore    float64            `json:"compliance_score" bson:"compliance_score"`
	NextSteps          []string           `json:"next_steps" bson:"next_steps"`
}

// VESOSAnalysis is the persisted record of one evaluation.
type VESOSAnalysis struct {
	ID              string         `json:"id" bson:"id"`
	ProjectID       string         `json:"project_id" bson:"project_id"`
	ProjectName     string         `json:"project_name" bson:"project_name"`
	Organization    string         `json:"organization" bson:"organization"`
	Sector          Sector         `json:"sector" bson:"sector"`
	VESOSScore      float64        `json:"vesos_score" bson:"vesos_score"`
	Recommendation  Recommendation `json:"recommendation" bson:"recommendation"`
	RiskLevel       RiskBand       `json:"risk_level" bson:"risk_level"`
	ComplianceScore float64        `json:"compliance_score" bson:"compliance_score"`
	Input           VESOSInput     `json:"input_data" bson:"input_data"`
	Result          VESOSResult    `json:"analysis_result" bson:"analysis_result"`
	CreatedAt       time.Time      `json:"created_at" bson:"created_at"`
	Status          string         `json:"status" bson:"status"`
}
