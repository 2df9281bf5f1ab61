package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunnyflex/factfind-chatbot/internal/mapping"
	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

func TestDefaultIsValid(t *testing.T) {
	q := Default()
	require.NoError(t, q.Validate())
	assert.Len(t, q.Sections, 5)

	first, ok := q.Question("uk_resident")
	require.True(t, ok)
	assert.Equal(t, TypeBoolean, first.Type)
	assert.True(t, first.Required)

	_, ok = q.Question("shoe_size")
	assert.False(t, ok)
}

func TestValidateRejectsBrokenStructures(t *testing.T) {
	assert.Error(t, (&Questionnaire{}).Validate())

	noQuestions := &Questionnaire{Sections: []Section{{ID: "s", Title: "S"}}}
	assert.Error(t, noQuestions.Validate())

	duplicate := &Questionnaire{Sections: []Section{{
		ID: "s", Title: "S",
		Questions: []Question{
			{ID: "q1", Text: "One?", Type: TypeText, Category: "personal"},
			{ID: "q1", Text: "Again?", Type: TypeText, Category: "personal"},
		},
	}}}
	assert.ErrorContains(t, duplicate.Validate(), "duplicate")

	selectNoOptions := &Questionnaire{Sections: []Section{{
		ID: "s", Title: "S",
		Questions: []Question{{ID: "q1", Text: "Pick?", Type: TypeSelect, Category: "personal"}},
	}}}
	assert.ErrorContains(t, selectNoOptions.Validate(), "options")
}

func TestShouldShow(t *testing.T) {
	data := types.NewCollectedData()

	// Follow-ups are hidden until the parent answer arrives.
	assert.False(t, ShouldShow("num_dependents", data))
	assert.False(t, ShouldShow("dependent_ages", data))
	assert.False(t, ShouldShow("unemployment_reason", data))
	assert.False(t, ShouldShow("smoking_history", data))
	assert.False(t, ShouldShow("medication_details", data))
	assert.True(t, ShouldShow("uk_resident", data))
	assert.True(t, ShouldShow("anything_else", data))

	data.Set("personal", "hasDependents", true)
	assert.True(t, ShouldShow("num_dependents", data))
	data.Set("personal", "hasDependents", false)
	assert.False(t, ShouldShow("num_dependents", data))

	data.Set("personal", "employmentStatus", "Unemployed")
	assert.True(t, ShouldShow("unemployment_reason", data))
	data.Set("personal", "employmentStatus", "Employed")
	assert.False(t, ShouldShow("unemployment_reason", data))

	data.Set("personal", "smokingStatus", "Never smoked")
	assert.True(t, ShouldShow("smoking_history", data))
	data.Set("personal", "smokingStatus", "Former smoker")
	assert.True(t, ShouldShow("smoking_history", data))
	data.Set("personal", "smokingStatus", "Current smoker")
	assert.False(t, ShouldShow("smoking_history", data))

	data.Set("personal", "takingMedication", true)
	assert.True(t, ShouldShow("medication_details", data))
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "takingMedication", FieldName("taking_medication"))
	assert.Equal(t, "relationshipToApplicant", FieldName("relationship_to_applicant"))
	assert.Equal(t, "occupation", FieldName("occupation"))

	// Mapped questions derive the same field the extraction table uses.
	for _, fm := range mapping.Table() {
		assert.Equal(t, fm.DataField, FieldName(fm.QuestionID))
	}
}

func TestParseRoundTrip(t *testing.T) {
	yamlDoc := []byte(`
sections:
  - id: basics
    title: Basics
    description: Getting started.
    order: 1
    questions:
      - id: uk_resident
        text: Are you a UK resident?
        type: boolean
        required: true
        category: personal
      - id: marital_status
        text: What is your marital status?
        type: select
        options: [Single, Married]
        required: true
        category: personal
`)
	q, err := Parse(yamlDoc)
	require.NoError(t, err)
	assert.Len(t, q.Sections, 1)
	assert.Len(t, q.Sections[0].Questions, 2)

	ms, ok := q.Question("marital_status")
	require.True(t, ok)
	assert.Equal(t, []string{"Single", "Married"}, ms.Options)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte(`sections: []`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{not yaml`))
	assert.Error(t, err)
}
