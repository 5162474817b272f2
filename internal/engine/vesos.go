package engine

import (
	"math"

	"aicompliance/internal/model"
)

// feasibilityWeights sum to 1.0. They are deploy-time constants: behavioral
// parity with persisted analyses depends on them never changing at runtime.
var feasibilityWeights = struct {
	technologicalMaturity float64
	budgetAvailability    float64
	teamCompetence        float64
	regulatoryClarity     float64
}{
	technologicalMaturity: 0.3,
	budgetAvailability:    0.25,
	teamCompetence:        0.25,
	regulatoryClarity:     0.2,
}

// nextSteps lists the fixed follow-up actions per recommendation.
var nextSteps = map[model.Recommendation][]string{
	model.RecommendEscalar: {
		"Proceder con implementación completa",
		"Asegurar presupuesto y recursos",
		"Establecer métricas de seguimiento",
		"Preparar plan de escalado",
	},
	model.RecommendIterar: {
		"Realizar mejoras en las áreas de menor puntuación",
		"Ejecutar piloto controlado",
		"Revisar análisis de riesgos",
		"Re-evaluar en 3 meses",
	},
	model.RecommendDetener: {
		"Suspender el proyecto actual",
		"Analizar lecciones aprendidas",
		"Considerar alternativas",
		"Re-plantear el problema",
	},
}

// FeasibilityScore is the weighted sum of the four feasibility factors,
// clamped to 10.
func FeasibilityScore(f model.FeasibilityFactors) float64 {
	score := f.TechnologicalMaturity*feasibilityWeights.technologicalMaturity +
		f.BudgetAvailability*feasibilityWeights.budgetAvailability +
		f.TeamCompetence*feasibilityWeights.teamCompetence +
		f.RegulatoryClarity*feasibilityWeights.regulatoryClarity
	return math.Min(score, 10.0)
}

// RiskScore aggregates probability x impact over all entries, normalized to
// a 0-10 scale, and classifies the result into a band. An empty risk list is
// (0, LOW).
func RiskScore(risks []model.RiskEntry) (float64, model.RiskBand) {
	if len(risks) == 0 {
		return 0.0, model.RiskBandLow
	}

	total := 0.0
	for _, r := range risks {
		total += r.Probability * r.Impact
	}

	maxPossible := float64(len(risks)) * 10
	normalized := (total / maxPossible) * 10

	switch {
	case normalized <= 3:
		return normalized, model.RiskBandLow
	case normalized <= 7:
		return normalized, model.RiskBandMedium
	default:
		return normalized, model.RiskBandHigh
	}
}

// TimeFactor decays exponentially with project duration: 1.0 at zero months,
// exp(-1) at one year, asymptotic to zero.
func TimeFactor(months float64) float64 {
	return math.Exp(-months / 12)
}

// CostFactor applies a logarithmic penalty to cost, floored at 0.1. Costs
// below 1000 euros are treated as 1000, so there is no bonus for trivially
// cheap projects.
func CostFactor(cost float64) float64 {
	return math.Max(0.1, 10-math.Log10(math.Max(cost, 1000))+3)
}

// UtilityScore is the arithmetic mean of technical and aspirational utility.
func UtilityScore(u model.UtilityIndicators) float64 {
	return (u.TechnicalUtility + u.AspirationalUtility) / 2
}

// Recommend maps a composite score to an action. Thresholds are strict: a
// score of exactly 1.5 iterates and exactly 0.8 stops.
func Recommend(score float64) (model.Recommendation, []string) {
	switch {
	case score > 1.5:
		return model.RecommendEscalar, nextSteps[model.RecommendEscalar]
	case score > 0.8:
		return model.RecommendIterar, nextSteps[model.RecommendIterar]
	default:
		return model.RecommendDetener, nextSteps[model.RecommendDetener]
	}
}

// Calculate runs the full VESOS evaluation. It validates the input first and
// returns a *model.ValidationError for any out-of-range field; a valid input
// never fails.
//
// The composite is a multiplicative gate: any sub-score near zero collapses
// the result toward zero regardless of the other factors.
func Calculate(in model.VESOSInput) (*model.VESOSResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	utilityScore := UtilityScore(in.Utility)
	feasibilityScore := FeasibilityScore(in.Feasibility)
	riskScore, riskBand := RiskScore(in.Risks)
	complianceScore := ComplianceScore(in.Sector, in.ComplianceRequirements)
	timeFactor := TimeFactor(in.TimeMonths)
	costFactor := CostFactor(in.Cost)

	// VESOS = U * (F/10) * (1 - R/10) * T * (C_factor/10) * (Compliance/10)
	score := utilityScore *
		(feasibilityScore / 10) *
		(1 - riskScore/10) *
		timeFactor *
		(costFactor / 10) *
		(complianceScore / 10)

	recommendation, steps := Recommend(score)

	// Heuristic band, not a statistical interval: it narrows as the weaker
	// of feasibility and compliance improves.
	confidenceRange := 0.1 * (1 - math.Min(feasibilityScore, complianceScore)/10)
	interval := model.ConfidenceInterval{
		LowerBound:      math.Max(0, score-confidenceRange),
		UpperBound:      math.Min(2, score+confidenceRange),
		ConfidenceLevel: 0.95,
	}

	analysis := model.DetailedAnalysis{
		UtilityScore:     utilityScore,
		FeasibilityScore: feasibilityScore,
		RiskScore:        riskScore,
		ComplianceScore:  complianceScore,
		CostFactor:       costFactor,
		TimeFactor:       timeFactor,
		ComponentBreakdown: model.ComponentBreakdown{
			TechnicalUtility:      in.Utility.TechnicalUtility,
			AspirationalUtility:   in.Utility.AspirationalUtility,
			TechnologicalMaturity: in.Feasibility.TechnologicalMaturity,
			BudgetAvailability:    in.Feasibility.BudgetAvailability,
			TeamCompetence:        in.Feasibility.TeamCompetence,
			RegulatoryClarity:     in.Feasibility.RegulatoryClarity,
		},
		SectorAnalysis: SectorAnalysis(in.Sector),
		ComplianceGaps: ComplianceGaps(in.Sector, in.ComplianceRequirements),
	}

	return &model.VESOSResult{
		VESOSScore:         roundTo(score, 3),
		Recommendation:     recommendation,
		ConfidenceInterval: interval,
		DetailedAnalysis:   analysis,
		RiskLevel:          riskBand,
		ComplianceScore:    roundTo(complianceScore, 2),
		NextSteps:          steps,
	}, nil
}

func roundTo(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}
