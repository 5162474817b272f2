package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aicompliance/internal/engine"
	"aicompliance/internal/model"
)

func TestComplianceScore_SubstringContainment(t *testing.T) {
	// "AI Act Article 6" covers "AI Act" even though it is not an exact match.
	score := engine.ComplianceScore(model.SectorDigitalHealth, []string{"AI Act Article 6"})
	assert.InDelta(t, 1.0, score, 1e-9) // 1 of 10
}

func TestComplianceScore_CaseSensitive(t *testing.T) {
	score := engine.ComplianceScore(model.SectorDigitalHealth, []string{"ai act"})
	assert.Equal(t, 0.0, score)
}

func TestComplianceScore_InsurtechTable(t *testing.T) {
	score := engine.ComplianceScore(model.SectorInsurtech, []string{
		"AI Act", "GDPR", "Solvencia II", "ISO 27001",
	})
	assert.InDelta(t, 5.0, score, 1e-9) // 4 of 8
}

func TestComplianceScore_ClampsAtTen(t *testing.T) {
	// A requirement matches at most once, but more requirements than
	// required regulations can overcount; the score still caps at 10.
	reqs := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		reqs = append(reqs, "AI Act")
	}
	score := engine.ComplianceScore(model.SectorInsurtech, reqs)
	assert.Equal(t, 10.0, score)
}

func TestComplianceScore_UnknownSectorIsNeutral(t *testing.T) {
	assert.Equal(t, 5.0, engine.ComplianceScore(model.Sector("agritech"), []string{"GDPR"}))
}

func TestComplianceGaps_FullCoverage(t *testing.T) {
	gaps := engine.ComplianceGaps(model.SectorInsurtech, []string{
		"AI Act", "GDPR compliance programme", "LOPDGDD", "NIS2", "Solvencia II",
	})
	assert.Empty(t, gaps)
}

func TestComplianceGaps_TableOrder(t *testing.T) {
	gaps := engine.ComplianceGaps(model.SectorDigitalHealth, []string{"GDPR"})
	assert.Equal(t, []string{"AI Act", "MDR", "LOPDGDD", "EHDS", "NIS2"}, gaps)
}

func TestSectorAnalysis_KnownAndUnknown(t *testing.T) {
	health := engine.SectorAnalysis(model.SectorDigitalHealth)
	assert.Contains(t, health.CriticalFactors, "Seguridad del paciente")

	unknown := engine.SectorAnalysis(model.Sector("fintech"))
	assert.Empty(t, unknown.KeyRegulations)
}
