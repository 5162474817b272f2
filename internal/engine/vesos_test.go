package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicompliance/internal/engine"
	"aicompliance/internal/model"
)

func validInput() model.VESOSInput {
	return model.VESOSInput{
		ProjectID:    "p-1",
		ProjectName:  "Triage Assistant",
		Organization: "Acme Health",
		Sector:       model.SectorDigitalHealth,
		Utility: model.UtilityIndicators{
			TechnicalUtility:    8,
			AspirationalUtility: 8,
		},
		Feasibility: model.FeasibilityFactors{
			TechnologicalMaturity: 8,
			BudgetAvailability:    8,
			TeamCompetence:        8,
			RegulatoryClarity:     8,
		},
		Cost:                   50000,
		Risks:                  nil,
		TimeMonths:             6,
		ComplianceRequirements: []string{"AI Act", "GDPR", "MDR"},
	}
}

func TestFeasibilityScore_WeightedSum(t *testing.T) {
	score := engine.FeasibilityScore(model.FeasibilityFactors{
		TechnologicalMaturity: 10, // 0.3
		BudgetAvailability:    8,  // 0.25
		TeamCompetence:        6,  // 0.25
		RegulatoryClarity:     4,  // 0.2
	})
	assert.InDelta(t, 10*0.3+8*0.25+6*0.25+4*0.2, score, 1e-9)
}

func TestFeasibilityScore_UniformInputIsIdentity(t *testing.T) {
	score := engine.FeasibilityScore(model.FeasibilityFactors{
		TechnologicalMaturity: 8,
		BudgetAvailability:    8,
		TeamCompetence:        8,
		RegulatoryClarity:     8,
	})
	assert.InDelta(t, 8.0, score, 1e-9)
}

func TestRiskScore_EmptyListIsLow(t *testing.T) {
	score, band := engine.RiskScore(nil)
	assert.Equal(t, 0.0, score)
	assert.Equal(t, model.RiskBandLow, band)
}

func TestRiskScore_Bands(t *testing.T) {
	tests := []struct {
		name     string
		risks    []model.RiskEntry
		want     float64
		wantBand model.RiskBand
	}{
		{
			name:     "single certain maximal risk",
			risks:    []model.RiskEntry{{Probability: 1, Impact: 10}},
			want:     10.0,
			wantBand: model.RiskBandHigh,
		},
		{
			// 0.3*10/(1*10)*10 = 3.0, inclusive upper bound stays LOW
			name:     "exactly 3 is low",
			risks:    []model.RiskEntry{{Probability: 0.3, Impact: 10}},
			want:     3.0,
			wantBand: model.RiskBandLow,
		},
		{
			// 0.7*10/(1*10)*10 = 7.0, inclusive upper bound stays MEDIUM
			name:     "exactly 7 is medium",
			risks:    []model.RiskEntry{{Probability: 0.7, Impact: 10}},
			want:     7.0,
			wantBand: model.RiskBandMedium,
		},
		{
			// (0.5*4 + 0.5*6) / 20 * 10 = 2.5
			name: "average over entries",
			risks: []model.RiskEntry{
				{Probability: 0.5, Impact: 4},
				{Probability: 0.5, Impact: 6},
			},
			want:     2.5,
			wantBand: model.RiskBandLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, band := engine.RiskScore(tt.risks)
			assert.InDelta(t, tt.want, score, 1e-9)
			assert.Equal(t, tt.wantBand, band)
		})
	}
}

func TestTimeFactor(t *testing.T) {
	assert.Equal(t, 1.0, engine.TimeFactor(0))
	assert.InDelta(t, math.Exp(-1), engine.TimeFactor(12), 1e-9)
	assert.Greater(t, engine.TimeFactor(6), engine.TimeFactor(18))
}

func TestCostFactor_FloorEffect(t *testing.T) {
	// Costs below 1000 clamp the log argument, so both score identically.
	assert.Equal(t, engine.CostFactor(1000), engine.CostFactor(500))
	assert.InDelta(t, 10.0, engine.CostFactor(1000), 1e-9) // 10 - 3 + 3
}

func TestCostFactor_LogPenalty(t *testing.T) {
	assert.InDelta(t, 10-math.Log10(50000)+3, engine.CostFactor(50000), 1e-9)
	assert.Greater(t, engine.CostFactor(10000), engine.CostFactor(1000000))
}

func TestUtilityScore_Mean(t *testing.T) {
	assert.InDelta(t, 7.5, engine.UtilityScore(model.UtilityIndicators{
		TechnicalUtility:    9,
		AspirationalUtility: 6,
	}), 1e-9)
}

func TestRecommend_Thresholds(t *testing.T) {
	rec, steps := engine.Recommend(1.6)
	assert.Equal(t, model.RecommendEscalar, rec)
	require.Len(t, steps, 4)

	// Exactly 1.5 iterates: the comparison is strict.
	rec, steps = engine.Recommend(1.5)
	assert.Equal(t, model.RecommendIterar, rec)
	require.Len(t, steps, 4)

	// Exactly 0.8 stops.
	rec, steps = engine.Recommend(0.8)
	assert.Equal(t, model.RecommendDetener, rec)
	require.Len(t, steps, 4)
}

func TestCalculate_ReferenceScenario(t *testing.T) {
	result, err := engine.Calculate(validInput())
	require.NoError(t, err)

	a := result.DetailedAnalysis
	assert.InDelta(t, 8.0, a.UtilityScore, 1e-9)
	assert.InDelta(t, 8.0, a.FeasibilityScore, 1e-9)
	assert.InDelta(t, 0.0, a.RiskScore, 1e-9)
	assert.Equal(t, model.RiskBandLow, result.RiskLevel)

	// 3 of 10 digital_health regulations covered
	assert.InDelta(t, 3.0, result.ComplianceScore, 1e-9)
	assert.InDelta(t, math.Exp(-0.5), a.TimeFactor, 1e-9)
	assert.InDelta(t, 10-math.Log10(50000)+3, a.CostFactor, 1e-9)

	// 8 * 0.8 * 1 * exp(-0.5) * 0.83010 * 0.3 ≈ 0.967
	assert.InDelta(t, 0.967, result.VESOSScore, 0.001)
	assert.Equal(t, model.RecommendIterar, result.Recommendation)
}

func TestCalculate_MaximalRiskGatesScoreToZero(t *testing.T) {
	in := validInput()
	in.Risks = []model.RiskEntry{{Probability: 1, Impact: 10}}

	result, err := engine.Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.VESOSScore)
	assert.Equal(t, model.RecommendDetener, result.Recommendation)
	assert.Equal(t, model.RiskBandHigh, result.RiskLevel)
}

func TestCalculate_ConfidenceInterval(t *testing.T) {
	result, err := engine.Calculate(validInput())
	require.NoError(t, err)

	// range = 0.1 * (1 - min(8, 3)/10) = 0.07
	ci := result.ConfidenceInterval
	assert.InDelta(t, 0.07, ci.UpperBound-result.VESOSScore, 0.001)
	assert.GreaterOrEqual(t, ci.LowerBound, 0.0)
	assert.LessOrEqual(t, ci.UpperBound, 2.0)
	assert.Equal(t, 0.95, ci.ConfidenceLevel)
}

func TestCalculate_ComplianceGaps(t *testing.T) {
	result, err := engine.Calculate(validInput())
	require.NoError(t, err)

	// digital_health gap table minus {AI Act, MDR, GDPR}
	assert.Equal(t, []string{"LOPDGDD", "EHDS", "NIS2"}, result.DetailedAnalysis.ComplianceGaps)
	assert.Equal(t, []string{"AI Act", "MDR", "GDPR", "EHDS"}, result.DetailedAnalysis.SectorAnalysis.KeyRegulations)
}

func TestCalculate_Deterministic(t *testing.T) {
	first, err := engine.Calculate(validInput())
	require.NoError(t, err)
	second, err := engine.Calculate(validInput())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.VESOSInput)
		wantField string
	}{
		{"utility out of range", func(in *model.VESOSInput) { in.Utility.TechnicalUtility = 11 }, "utility.technical_utility"},
		{"negative feasibility", func(in *model.VESOSInput) { in.Feasibility.TeamCompetence = -1 }, "feasibility.team_competence"},
		{"zero cost", func(in *model.VESOSInput) { in.Cost = 0 }, "cost"},
		{"negative time", func(in *model.VESOSInput) { in.TimeMonths = -3 }, "time_months"},
		{"probability above one", func(in *model.VESOSInput) {
			in.Risks = []model.RiskEntry{{Probability: 1.5, Impact: 5}}
		}, "risks[0].probability"},
		{"impact above ten", func(in *model.VESOSInput) {
			in.Risks = []model.RiskEntry{{Probability: 0.5, Impact: 12}}
		}, "risks[0].impact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := engine.Calculate(in)
			require.Error(t, err)

			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestCalculate_UnknownSectorUsesNeutralDefaults(t *testing.T) {
	in := validInput()
	in.Sector = model.Sector("fintech")

	result, err := engine.Calculate(in)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, result.ComplianceScore, 1e-9)
	assert.Empty(t, result.DetailedAnalysis.ComplianceGaps)
	assert.Empty(t, result.DetailedAnalysis.SectorAnalysis.KeyRegulations)
}
