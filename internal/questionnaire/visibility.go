package questionnaire

import (
	"strings"

	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

// FieldName is the data field a question's answer is stored under: the
// camel-cased form of the question id. Collected answers, visibility
// checks, and next-question lookups all key on it, so "taking_medication"
// and "takingMedication" never drift apart.
func FieldName(questionID string) string {
	parts := strings.Split(questionID, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

// ShouldShow decides whether a conditional follow-up applies given the
// answers collected so far. Unknown ids are always shown. A follow-up is
// hidden until its parent answer is present, so a partially filled
// fact-find never asks about dependents nobody mentioned.
func ShouldShow(questionID string, answers types.CollectedData) bool {
	switch questionID {
	case "num_dependents", "dependent_ages":
		v, ok := answers.Lookup("hasDependents")
		return ok && v == true
	case "unemployment_reason":
		v, ok := answers.Lookup("employmentStatus")
		return ok && v == "Unemployed"
	case "smoking_history":
		v, ok := answers.Lookup("smokingStatus")
		return ok && (v == "Never smoked" || v == "Former smoker")
	case "medication_details":
		v, ok := answers.Lookup("takingMedication")
		return ok && v == true
	default:
		return true
	}
}
