package engine

import (
	"strings"

	"aicompliance/internal/model"
)

// sectorRegulations lists the regulations a sector must cover for the
// compliance coverage score. Matching is substring containment, so a
// requirement like "AI Act Article 6" covers "AI Act".
var sectorRegulations = map[model.Sector][]string{
	model.SectorDigitalHealth: {
		"AI Act", "MDR", "GDPR", "LOPDGDD", "EHDS", "NIS2",
		"Ley 41/2002", "ISO 27001", "ISO 13485", "ISO 14971",
	},
	model.SectorInsurtech: {
		"AI Act", "GDPR", "LOPDGDD", "NIS2", "Ley del Contrato de Seguro",
		"Solvencia II", "ISO 27001", "ISO 31000",
	},
}

// sectorGapRegulations is the shorter mandatory subset reported in the gap
// analysis. Deliberately distinct from sectorRegulations.
var sectorGapRegulations = map[model.Sector][]string{
	model.SectorDigitalHealth: {"AI Act", "MDR", "GDPR", "LOPDGDD", "EHDS", "NIS2"},
	model.SectorInsurtech:     {"AI Act", "GDPR", "LOPDGDD", "NIS2", "Solvencia II"},
}

var sectorProfiles = map[model.Sector]model.SectorProfile{
	model.SectorDigitalHealth: {
		KeyRegulations:  []string{"AI Act", "MDR", "GDPR", "EHDS"},
		CriticalFactors: []string{"Seguridad del paciente", "Interoperabilidad", "Evidencia clínica"},
		TypicalRisks:    []string{"Regulatorio", "Técnico", "Adopción clínica"},
		SuccessMetrics:  []string{"Mejora en resultados clínicos", "Satisfacción del paciente", "Eficiencia operativa"},
	},
	model.SectorInsurtech: {
		KeyRegulations:  []string{"AI Act", "GDPR", "Solvencia II"},
		CriticalFactors: []string{"Gestión de riesgos", "Transparencia algorítmica", "Protección del consumidor"},
		TypicalRisks:    []string{"Regulatorio", "Actuarial", "Reputacional"},
		SuccessMetrics:  []string{"Reducción de siniestralidad", "Satisfacción del cliente", "Eficiencia operativa"},
	},
}

// ComplianceScore returns the fraction of the sector's required regulations
// covered by the declared requirements, on a 0-10 scale. An unknown sector
// scores a neutral 5.0.
func ComplianceScore(sector model.Sector, requirements []string) float64 {
	required := sectorRegulations[sector]
	if len(required) == 0 {
		return 5.0
	}

	covered := 0
	for _, req := range requirements {
		for _, reg := range required {
			if strings.Contains(req, reg) {
				covered++
				break
			}
		}
	}

	score := float64(covered) / float64(len(required)) * 10
	if score > 10.0 {
		score = 10.0
	}
	return score
}

// ComplianceGaps returns the mandatory regulations for the sector that no
// declared requirement references, in table order. Unknown sectors have no
// gap table and yield an empty list.
func ComplianceGaps(sector model.Sector, requirements []string) []string {
	gaps := []string{}
	for _, reg := range sectorGapRegulations[sector] {
		covered := false
		for _, req := range requirements {
			if strings.Contains(req, reg) {
				covered = true
				break
			}
		}
		if !covered {
			gaps = append(gaps, reg)
		}
	}
	return gaps
}

// SectorAnalysis returns the static profile for a sector, or the zero profile
// when the sector is unknown.
func SectorAnalysis(sector model.Sector) model.SectorProfile {
	return sectorProfiles[sector]
}
