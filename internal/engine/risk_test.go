package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicompliance/internal/engine"
	"aicompliance/internal/model"
)

func TestClassify_EmptyQuestionnaire(t *testing.T) {
	result := engine.Classify(model.QuestionnaireResponse{})

	assert.Equal(t, 0.0, result.RiskScore)
	assert.Equal(t, model.RiskMinimal, result.RiskLevel)
	assert.Equal(t, model.StatusCompliant, result.ComplianceStatus)

	// Only the continuous monitoring pair fires for minimal risk.
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "Mantener monitoreo continuo del sistema para detectar cambios en el riesgo", result.Recommendations[0])
	assert.Equal(t, "Establecer proceso de revisión periódica del cumplimiento", result.Recommendations[1])
}

func TestClassify_AllHighRiskFactorsYes(t *testing.T) {
	responses := model.QuestionnaireResponse{
		"medical_diagnosis":         "yes",
		"medical_treatment":         "yes",
		"automated_decision_making": "yes",
		"biometric_identification":  "yes",
		"emotion_recognition":       "yes",
		"critical_infrastructure":   "yes",
	}

	result := engine.Classify(responses)

	// accumulator 18 over 6 questions, (18/6)*4 = 12, capped at 10
	assert.Equal(t, 10.0, result.RiskScore)
	assert.Equal(t, model.RiskUnacceptable, result.RiskLevel)
	assert.Equal(t, model.StatusNonCompliant, result.ComplianceStatus)
}

func TestClassify_RiskLevelThresholds(t *testing.T) {
	tests := []struct {
		name      string
		responses model.QuestionnaireResponse
		wantLevel model.RiskLevel
	}{
		{
			// one plain yes: (1/1)*4 = 4.0
			name:      "limited at 4.0",
			responses: model.QuestionnaireResponse{"uses_ai": "yes"},
			wantLevel: model.RiskLimited,
		},
		{
			// (0.5/1)*4 = 2.0
			name:      "minimal for single partial",
			responses: model.QuestionnaireResponse{"uses_ai": "partial"},
			wantLevel: model.RiskMinimal,
		},
		{
			// (3+1)/2*4 = 8.0, inclusive lower bound
			name: "unacceptable at exactly 8.0",
			responses: model.QuestionnaireResponse{
				"biometric_identification": "yes",
				"uses_ai":                  "yes",
			},
			wantLevel: model.RiskUnacceptable,
		},
		{
			// (3+0.5+0.5+0.5)/3... use 3 high-risk + 3 no: (9/6)*4 = 6.0
			name: "high at exactly 6.0",
			responses: model.QuestionnaireResponse{
				"medical_diagnosis": "yes",
				"medical_treatment": "yes",
				"emotion_recognition": "yes",
				"q4":                "no",
				"q5":                "no",
				"q6":                "no",
			},
			wantLevel: model.RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Classify(tt.responses)
			assert.Equal(t, tt.wantLevel, result.RiskLevel)
		})
	}
}

func TestClassify_UnknownValuesAreInert(t *testing.T) {
	result := engine.Classify(model.QuestionnaireResponse{
		"q1": "maybe",
		"q2": 42,
		"q3": true,
	})
	assert.Equal(t, 0.0, result.RiskScore)
	assert.Equal(t, model.RiskMinimal, result.RiskLevel)
}

func TestClassify_AddingYesNeverDecreasesScore(t *testing.T) {
	base := model.QuestionnaireResponse{
		"medical_diagnosis": "yes",
		"data_processing":   "sensitive",
		"transparency":      "partial",
	}
	before := engine.Classify(base).RiskScore

	extended := model.QuestionnaireResponse{}
	for k, v := range base {
		extended[k] = v
	}
	extended["automated_decision_making"] = "yes"

	after := engine.Classify(extended).RiskScore
	assert.GreaterOrEqual(t, after, before)
}

func TestClassify_Idempotent(t *testing.T) {
	responses := model.QuestionnaireResponse{
		"medical_diagnosis": "yes",
		"data_processing":   "sensitive",
		"human_oversight":   "exception",
	}

	first := engine.Classify(responses)
	second := engine.Classify(responses)
	assert.Equal(t, first, second)
}

func TestClassify_RecommendationTriggersAndOrder(t *testing.T) {
	responses := model.QuestionnaireResponse{
		"medical_diagnosis": "yes",
		"data_processing":   "sensitive",
		"transparency":      "none",
		"human_oversight":   "exception",
	}

	result := engine.Classify(responses)
	// score: 3.0/4 * 4 = 3.0 -> limited
	require.Equal(t, model.RiskLimited, result.RiskLevel)

	recs := result.Recommendations
	// clinical(2) + data protection(2) + transparency(2) + oversight(2) +
	// monitoring(2); the sector scans look at values only and none of
	// "yes"/"sensitive"/"none"/"exception" contains a trigger substring
	require.Len(t, recs, 10)
	assert.Equal(t, "Asegurar validación clínica de sistemas de IA médica", recs[0])
	assert.Equal(t, "Asegurar cumplimiento del GDPR para procesamiento de datos personales", recs[2])
	assert.Equal(t, "Mejorar transparencia informando a usuarios sobre el uso de IA", recs[4])
	assert.Equal(t, "Establecer supervisión humana continua o periódica", recs[6])
	assert.Equal(t, "Mantener monitoreo continuo del sistema para detectar cambios en el riesgo", recs[8])
}

func TestClassify_SectorScanMatchesAnyValue(t *testing.T) {
	// The sector scan inspects values, regardless of key, with non-string
	// values coerced to their string form.
	result := engine.Classify(model.QuestionnaireResponse{
		"business_model": "health insurance pricing",
	})

	assert.Contains(t, result.Recommendations, "Revisar políticas de no discriminación en evaluación de riesgos")
	assert.Contains(t, result.Recommendations, "Asegurar transparencia en procesos de suscripción automática")
}

func TestClassify_MedicalSubstringInValue(t *testing.T) {
	result := engine.Classify(model.QuestionnaireResponse{
		"use_case": "remote diagnosis support",
	})

	assert.Contains(t, result.Recommendations, "Consultar con autoridades sanitarias sobre requisitos específicos")
}
