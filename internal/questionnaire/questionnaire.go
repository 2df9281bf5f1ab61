// Package questionnaire holds the fact-find question set: the sections
// and questions an adviser works through, plus the visibility rules for
// conditional follow-ups.
package questionnaire

import "fmt"

type QuestionType string

const (
	TypeText        QuestionType = "text"
	TypeBoolean     QuestionType = "boolean"
	TypeNumber      QuestionType = "number"
	TypeSelect      QuestionType = "select"
	TypeMultiSelect QuestionType = "multiselect"
	TypeDate        QuestionType = "date"
)

type Question struct {
	ID        string       `yaml:"id"`
	Text      string       `yaml:"text"`
	Type      QuestionType `yaml:"type"`
	Options   []string     `yaml:"options,omitempty"`
	Required  bool         `yaml:"required"`
	Category  string       `yaml:"category"`
	FollowUps []string     `yaml:"follow_ups,omitempty"`
}

type Section struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Order       int        `yaml:"order"`
	Questions   []Question `yaml:"questions"`
}

type Questionnaire struct {
	Sections []Section `yaml:"sections"`
}

// Default returns the built-in UK insurance fact-find questionnaire.
func Default() *Questionnaire {
	return &Questionnaire{Sections: []Section{
		{
			ID:          "basic_eligibility",
			Title:       "Basic Eligibility",
			Description: "Let's start with some basic eligibility questions to understand your situation.",
			Order:       1,
			Questions: []Question{
				{ID: "uk_resident", Text: "Are you UK domiciled and a UK tax resident?", Type: TypeBoolean, Required: true, Category: "personal"},
				{ID: "marital_status", Text: "What is your marital status?", Type: TypeSelect, Options: []string{"Single", "Married", "Civil Partnership", "Divorced", "Widowed", "Separated"}, Required: true, Category: "personal"},
				{ID: "relationship_to_applicant", Text: "What is your relationship to the other applicant (if applicable)?", Type: TypeSelect, Options: []string{"Spouse", "Civil Partner", "Partner", "Not Applicable - Single Application"}, Required: false, Category: "personal"},
			},
		},
		{
			ID:          "dependents_info",
			Title:       "Dependents Information",
			Description: "Tell us about your dependents and family situation.",
			Order:       2,
			Questions: []Question{
				{ID: "has_dependents", Text: "Do you have any dependents? (Would you like to add any dependents to your policy?)", Type: TypeBoolean, Required: true, Category: "personal", FollowUps: []string{"num_dependents", "dependent_ages"}},
				{ID: "num_dependents", Text: "If yes, how many dependents do you have? (under 18)", Type: TypeNumber, Required: false, Category: "personal"},
				{ID: "dependent_ages", Text: "How old are your dependents?", Type: TypeText, Required: false, Category: "personal"},
			},
		},
		{
			ID:          "employment_info",
			Title:       "Employment Information",
			Description: "Help us understand your employment and occupation details.",
			Order:       3,
			Questions: []Question{
				{ID: "occupation", Text: "What is your occupation?", Type: TypeText, Required: false, Category: "personal"},
				{ID: "employment_status", Text: "What is your employment status?", Type: TypeSelect, Options: []string{"Employed", "Self-Employed", "Unemployed"}, Required: true, Category: "personal", FollowUps: []string{"unemployment_reason"}},
				{ID: "unemployment_reason", Text: "If unemployed, please explain why.", Type: TypeText, Required: false, Category: "personal"},
			},
		},
		{
			ID:          "health_lifestyle",
			Title:       "Health and Lifestyle",
			Description: "We need to understand your health and lifestyle for insurance purposes.",
			Order:       4,
			Questions: []Question{
				{ID: "smoking_status", Text: "Do you smoke?", Type: TypeBoolean, Required: true, Category: "personal", FollowUps: []string{"smoking_history"}},
				{ID: "smoking_history", Text: "If no, have you smoked in the last 12 months?", Type: TypeBoolean, Required: false, Category: "personal"},
				{ID: "taking_medication", Text: "Are you currently taking any medication?", Type: TypeBoolean, Required: true, Category: "personal", FollowUps: []string{"medication_details"}},
				{ID: "medication_details", Text: "If yes, please list the medication you are taking.", Type: TypeText, Required: false, Category: "personal"},
				{ID: "exercise_regularly", Text: "Do you do any exercise?", Type: TypeBoolean, Required: true, Category: "personal"},
			},
		},
		{
			ID:          "physical_measurements",
			Title:       "Physical Measurements",
			Description: "We need your physical measurements for health assessment.",
			Order:       5,
			Questions: []Question{
				{ID: "height", Text: "What is your height?", Type: TypeText, Required: true, Category: "personal"},
				{ID: "weight", Text: "What is your weight?", Type: TypeText, Required: true, Category: "personal"},
			},
		},
	}}
}

// Validate checks structural integrity: no empty sections, every
// question fully described, no duplicate ids across sections.
func (q *Questionnaire) Validate() error {
	if q == nil || len(q.Sections) == 0 {
		return fmt.Errorf("questionnaire has no sections")
	}
	seen := map[string]bool{}
	for _, s := range q.Sections {
		if s.ID == "" || s.Title == "" {
			return fmt.Errorf("section %q missing id or title", s.ID)
		}
		if len(s.Questions) == 0 {
			return fmt.Errorf("section %q has no questions", s.ID)
		}
		for _, qu := range s.Questions {
			if qu.ID == "" || qu.Text == "" || qu.Type == "" || qu.Category == "" {
				return fmt.Errorf("section %q: question %q is incomplete", s.ID, qu.ID)
			}
			if seen[qu.ID] {
				return fmt.Errorf("duplicate question id %q", qu.ID)
			}
			seen[qu.ID] = true
			if (qu.Type == TypeSelect || qu.Type == TypeMultiSelect) && len(qu.Options) == 0 {
				return fmt.Errorf("select question %q has no options", qu.ID)
			}
		}
	}
	return nil
}

// Question looks up a question by id across all sections.
func (q *Questionnaire) Question(id string) (Question, bool) {
	for _, s := range q.Sections {
		for _, qu := range s.Questions {
			if qu.ID == id {
				return qu, true
			}
		}
	}
	return Question{}, false
}

// Questions returns all questions in section order.
func (q *Questionnaire) Questions() []Question {
	var out []Question
	for _, s := range q.Sections {
		out = append(out, s.Questions...)
	}
	return out
}
