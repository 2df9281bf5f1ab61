// Package mapping holds the static table linking fact-find questions to
// the data fields and extractors that interpret answers to them.
package mapping

import (
	"fmt"
	"regexp"

	"github.com/bunnyflex/factfind-chatbot/internal/extractor"
)

// ValidationRule is the mapping-level check applied to a formatted value
// after the extractor has already accepted it.
type ValidationRule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Custom    func(value any) bool
}

// FieldMapping ties one question to a data category, a field name and
// the extractor key used to read answers. Mappings are static and many
// may share an extractor key.
type FieldMapping struct {
	QuestionID   string
	DataCategory string // personal, financial, insurance, preferences
	DataField    string
	ExtractorKey extractor.Key
	Rules        ValidationRule
}

// Table is the UK fact-find question set. Order matters: the
// clarification scan walks it top to bottom.
func Table() []FieldMapping {
	return []FieldMapping{
		{QuestionID: "uk_resident", DataCategory: "personal", DataField: "ukResident", ExtractorKey: extractor.KeyUKResident, Rules: ValidationRule{Required: true}},
		{QuestionID: "marital_status", DataCategory: "personal", DataField: "maritalStatus", ExtractorKey: extractor.KeyMaritalStatus, Rules: ValidationRule{Required: true}},
		{QuestionID: "has_dependents", DataCategory: "personal", DataField: "hasDependents", ExtractorKey: extractor.KeyBooleanResponse, Rules: ValidationRule{Required: true}},
		{QuestionID: "num_dependents", DataCategory: "personal", DataField: "numDependents", ExtractorKey: extractor.KeyNumber, Rules: ValidationRule{Required: false}},
		{QuestionID: "dependent_ages", DataCategory: "personal", DataField: "dependentAges", ExtractorKey: extractor.KeyAge, Rules: ValidationRule{Required: false}},
		{QuestionID: "employment_status", DataCategory: "personal", DataField: "employmentStatus", ExtractorKey: extractor.KeyEmploymentStatus, Rules: ValidationRule{Required: true}},
		{QuestionID: "occupation", DataCategory: "personal", DataField: "occupation", ExtractorKey: extractor.KeyOccupation, Rules: ValidationRule{Required: false}},
		{QuestionID: "smoking_status", DataCategory: "personal", DataField: "smokingStatus", ExtractorKey: extractor.KeySmokingStatus, Rules: ValidationRule{Required: true}},
		{QuestionID: "height", DataCategory: "personal", DataField: "height", ExtractorKey: extractor.KeyHeight, Rules: ValidationRule{Required: true}},
		{QuestionID: "weight", DataCategory: "personal", DataField: "weight", ExtractorKey: extractor.KeyWeight, Rules: ValidationRule{Required: true}},
	}
}

// ByField finds a mapping by data field name.
func ByField(table []FieldMapping, field string) (FieldMapping, bool) {
	for _, m := range table {
		if m.DataField == field {
			return m, true
		}
	}
	return FieldMapping{}, false
}

// ByQuestion finds a mapping by question id.
func ByQuestion(table []FieldMapping, questionID string) (FieldMapping, bool) {
	for _, m := range table {
		if m.QuestionID == questionID {
			return m, true
		}
	}
	return FieldMapping{}, false
}

// Validate applies the mapping-level rules to a formatted value.
// The returned string is a human-readable reason, "" when valid.
func (r ValidationRule) Validate(value any) (bool, string) {
	if r.Required && (value == nil || value == "") {
		return false, "This field is required"
	}
	if s, ok := value.(string); ok {
		if r.MinLength > 0 && len(s) < r.MinLength {
			return false, fmt.Sprintf("Minimum length is %d", r.MinLength)
		}
		if r.MaxLength > 0 && len(s) > r.MaxLength {
			return false, fmt.Sprintf("Maximum length is %d", r.MaxLength)
		}
		if r.Pattern != nil && !r.Pattern.MatchString(s) {
			return false, "Invalid format"
		}
	}
	if r.Custom != nil && !r.Custom(value) {
		return false, "Custom validation failed"
	}
	return true, ""
}

var clarificationTemplates = map[string]string{
	"uk_resident":       "Are you UK domiciled and a UK tax resident?",
	"marital_status":    "What is your marital status?",
	"has_dependents":    "Do you have any dependents?",
	"num_dependents":    "How many dependents do you have?",
	"dependent_ages":    "What are the ages of your dependents?",
	"employment_status": "What is your employment status?",
	"occupation":        "What is your occupation?",
	"smoking_status":    "Do you smoke?",
	"height":            "What is your height?",
	"weight":            "What is your weight?",
}

// ClarificationQuestion renders the canned prompt for a mapping,
// falling back to a generic phrasing for unknown question ids.
func ClarificationQuestion(m FieldMapping) string {
	if q, ok := clarificationTemplates[m.QuestionID]; ok {
		return q
	}
	return fmt.Sprintf("Could you provide information about %s?", m.DataField)
}
