// Package engine holds the deterministic scoring cores: the EU AI Act risk
// classifier and the ICU-VESOS project evaluator. Both are pure functions over
// validated inputs; callers own persistence. Identical input always produces
// identical output, since results are stored and later audited.
package engine

import (
	"fmt"
	"strings"

	"aicompliance/internal/model"
)

// highRiskFactors are the questionnaire keys that mark an EU AI Act high-risk
// use case. A "yes" on any of them weighs 3.0 instead of 1.0.
var highRiskFactors = map[string]bool{
	"medical_diagnosis":         true,
	"medical_treatment":         true,
	"automated_decision_making": true,
	"biometric_identification":  true,
	"emotion_recognition":       true,
	"critical_infrastructure":   true,
}

// Classify scores a questionnaire against the EU AI Act risk categories.
// Unknown keys and values are inert; an empty questionnaire scores 0 with
// level "minimal". The operation is total: it never fails for well-typed
// input.
func Classify(responses model.QuestionnaireResponse) model.RiskAssessmentResult {
	score := 0.0
	for key, value := range responses {
		answer, _ := value.(string)
		switch {
		case highRiskFactors[key] && answer == "yes":
			score += 3.0
		case answer == "yes":
			score += 1.0
		case answer == "partial":
			score += 0.5
		}
	}

	normalized := 0.0
	if len(responses) > 0 {
		normalized = (score / float64(len(responses))) * 4
		if normalized > 10.0 {
			normalized = 10.0
		}
	}

	level := riskLevelFor(normalized)

	return model.RiskAssessmentResult{
		RiskScore:        normalized,
		RiskLevel:        level,
		ComplianceStatus: complianceStatusFor(level),
		Recommendations:  recommendations(responses, level),
	}
}

// riskLevelFor applies the descending thresholds; first match wins.
func riskLevelFor(score float64) model.RiskLevel {
	switch {
	case score >= 8.0:
		return model.RiskUnacceptable
	case score >= 6.0:
		return model.RiskHigh
	case score >= 3.0:
		return model.RiskLimited
	default:
		return model.RiskMinimal
	}
}

func complianceStatusFor(level model.RiskLevel) model.ComplianceStatus {
	switch level {
	case model.RiskUnacceptable:
		return model.StatusNonCompliant
	case model.RiskHigh:
		return model.StatusPartiallyCompliant
	default:
		return model.StatusCompliant
	}
}

// recommendations evaluates the rule list in a fixed order. Rules are
// independent: every matching rule appends its strings, so the output keeps
// rule order and may repeat themes.
func recommendations(responses model.QuestionnaireResponse, level model.RiskLevel) []string {
	recs := []string{}

	if level == model.RiskUnacceptable {
		recs = append(recs,
			"Acción inmediata requerida: Algunos sistemas de IA pueden estar prohibidos bajo el EU AI Act",
			"Realizar revisión legal con especialista en regulación de IA",
			"Considerar enfoques alternativos de IA que cumplan con las regulaciones",
		)
	}

	if level == model.RiskHigh || level == model.RiskUnacceptable {
		recs = append(recs,
			"Implementar procedimientos de evaluación de conformidad",
			"Establecer sistema de gestión de calidad",
			"Asegurar mecanismos de supervisión humana",
			"Implementar sistema de gestión de riesgos",
			"Mantener documentación detallada y registros",
		)
	}

	if answerEquals(responses, "medical_diagnosis", "yes") {
		recs = append(recs,
			"Asegurar validación clínica de sistemas de IA médica",
			"Implementar cumplimiento de regulaciones de dispositivos médicos",
		)
	}

	if answerIn(responses, "data_processing", "sensitive", "personal") {
		recs = append(recs,
			"Asegurar cumplimiento del GDPR para procesamiento de datos personales",
			"Implementar principios de minimización de datos",
		)
	}

	if answerEquals(responses, "automated_decision_making", "yes") {
		recs = append(recs,
			"Proporcionar información clara sobre toma de decisiones automatizada",
			"Implementar mecanismos de derecho a explicación",
		)
	}

	if answerIn(responses, "transparency", "none", "minimal") {
		recs = append(recs,
			"Mejorar transparencia informando a usuarios sobre el uso de IA",
			"Desarrollar políticas claras de comunicación sobre sistemas de IA",
		)
	}

	if answerIn(responses, "human_oversight", "none", "exception") {
		recs = append(recs,
			"Establecer supervisión humana continua o periódica",
			"Capacitar personal para supervisión efectiva de sistemas de IA",
		)
	}

	if answerEquals(responses, "biometric_identification", "yes") {
		recs = append(recs,
			"Evaluar necesidad legal y proporcionalidad de identificación biométrica",
			"Implementar salvaguardas adicionales para datos biométricos",
		)
	}

	if answerEquals(responses, "emotion_recognition", "yes") {
		recs = append(recs,
			"Revisar bases legales para reconocimiento de emociones",
			"Considerar alternativas menos invasivas",
		)
	}

	// Sector triggers scan every value, not just known keys. Non-string
	// answers are coerced to their string form before the substring test.
	if anyValueContains(responses, "medical", "diagnosis") {
		recs = append(recs,
			"Consultar con autoridades sanitarias sobre requisitos específicos",
			"Establecer procesos de validación clínica continua",
		)
	}

	if anyValueContains(responses, "insurance", "risk_assessment") {
		recs = append(recs,
			"Revisar políticas de no discriminación en evaluación de riesgos",
			"Asegurar transparencia en procesos de suscripción automática",
		)
	}

	if level == model.RiskLimited || level == model.RiskMinimal {
		recs = append(recs,
			"Mantener monitoreo continuo del sistema para detectar cambios en el riesgo",
			"Establecer proceso de revisión periódica del cumplimiento",
		)
	}

	return recs
}

func answerEquals(responses model.QuestionnaireResponse, key, want string) bool {
	answer, ok := responses[key].(string)
	return ok && answer == want
}

func answerIn(responses model.QuestionnaireResponse, key string, wants ...string) bool {
	answer, ok := responses[key].(string)
	if !ok {
		return false
	}
	for _, w := range wants {
		if answer == w {
			return true
		}
	}
	return false
}

func anyValueContains(responses model.QuestionnaireResponse, substrings ...string) bool {
	for _, value := range responses {
		s := fmt.Sprint(value)
		for _, sub := range substrings {
			if strings.Contains(s, sub) {
				return true
			}
		}
	}
	return false
}
