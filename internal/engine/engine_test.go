package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunnyflex/factfind-chatbot/internal/extractor"
	"github.com/bunnyflex/factfind-chatbot/internal/mapping"
	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

func newTestEngine(opts ...Option) *Engine {
	return New(extractor.NewRegistry(), mapping.Table(), opts...)
}

func emptyContext() types.ExtractionContext {
	return types.ExtractionContext{PreviousAnswers: types.NewCollectedData()}
}

func TestSmallTalkShortCircuits(t *testing.T) {
	e := newTestEngine()

	res := e.SmartExtract("Hello", emptyContext())
	assert.Empty(t, res.Extracted)
	assert.Zero(t, res.Confidence)
	assert.True(t, res.NeedsClarification)
	require.Len(t, res.ClarificationQuestions, 7)
	assert.Equal(t, "Are you UK domiciled and a UK tax resident?", res.ClarificationQuestions[0])
	assert.Empty(t, res.ValidationErrors)

	// Whole-message matching only: a greeting inside a real answer does
	// not short-circuit.
	res = e.SmartExtract("hello, I am married", emptyContext())
	assert.Equal(t, "Married", res.Extracted["maritalStatus"])
}

func TestMultiFieldExtraction(t *testing.T) {
	e := newTestEngine()

	res := e.SmartExtract("I am single and work as a teacher", emptyContext())
	assert.Equal(t, "Single", res.Extracted["maritalStatus"])
	assert.Equal(t, "Employed", res.Extracted["employmentStatus"])
	assert.Equal(t, "teacher", res.Extracted["occupation"])
	assert.InDelta(t, (0.95+0.7+0.9)/3, res.Confidence, 0.001)
}

func TestMissingRequiredFieldsClarified(t *testing.T) {
	e := newTestEngine()

	res := e.SmartExtract("I am divorced", emptyContext())
	assert.Equal(t, "Divorced", res.Extracted["maritalStatus"])
	assert.True(t, res.NeedsClarification)
	assert.Contains(t, res.ClarificationQuestions, "Are you UK domiciled and a UK tax resident?")
	assert.Contains(t, res.ClarificationQuestions, "Do you smoke?")
	assert.NotContains(t, res.ClarificationQuestions, "What is your marital status?")
}

func TestAcceptedAnswersSuppressClarification(t *testing.T) {
	e := newTestEngine()

	prev := types.NewCollectedData()
	prev.Set("personal", "ukResident", true)
	// A stored false still counts as answered.
	prev.Set("personal", "hasDependents", false)

	res := e.SmartExtract("I am divorced", types.ExtractionContext{PreviousAnswers: prev})
	assert.NotContains(t, res.ClarificationQuestions, "Are you UK domiciled and a UK tax resident?")
	assert.NotContains(t, res.ClarificationQuestions, "Do you have any dependents?")
	assert.Contains(t, res.ClarificationQuestions, "Do you smoke?")
}

func TestVisibilityFiltersClarifications(t *testing.T) {
	hidden := func(questionID string, _ types.CollectedData) bool {
		return questionID != "height" && questionID != "weight"
	}
	e := newTestEngine(WithVisibility(hidden))

	res := e.SmartExtract("I am divorced", emptyContext())
	assert.NotContains(t, res.ClarificationQuestions, "What is your height?")
	assert.NotContains(t, res.ClarificationQuestions, "What is your weight?")
	assert.Contains(t, res.ClarificationQuestions, "Do you smoke?")
}

func TestBareYesNoUsesPriorQuestion(t *testing.T) {
	e := newTestEngine()

	ctx := emptyContext()
	ctx.ConversationHistory = []string{"Do you have any dependents?", "No"}
	res := e.SmartExtract("No", ctx)
	assert.Equal(t, false, res.Extracted["hasDependents"])
	assert.InDelta(t, 0.95, res.Confidence, 0.001)

	ctx.ConversationHistory = []string{"Are you a UK tax resident?", "yeah"}
	res = e.SmartExtract("yeah", ctx)
	assert.Equal(t, true, res.Extracted["ukResident"])

	// No prior cue: a bare yes extracts nothing rather than guessing.
	res = e.SmartExtract("yes", emptyContext())
	assert.Empty(t, res.Extracted)
}

func TestMaritalAnswerImpliesDependents(t *testing.T) {
	e := newTestEngine()

	ctx := emptyContext()
	ctx.LastAssistantMessage = "Do you have any dependents?"
	res := e.SmartExtract("I am single", ctx)
	assert.Equal(t, "Single", res.Extracted["maritalStatus"])
	assert.Equal(t, false, res.Extracted["hasDependents"])
	assert.InDelta(t, (0.95+0.75)/2, res.Confidence, 0.001)
}

func TestInvalidValueNotExtracted(t *testing.T) {
	e := newTestEngine()

	res := e.SmartExtract("my height is 400cm", emptyContext())
	assert.NotContains(t, res.Extracted, "height")
	assert.True(t, res.NeedsClarification)
}

func TestSmartExtractIdempotent(t *testing.T) {
	e := newTestEngine()
	ctx := emptyContext()

	first := e.SmartExtract("I am married with two kids", ctx)
	second := e.SmartExtract("I am married with two kids", ctx)
	assert.Equal(t, first, second)
}

func TestExtractForQuestion(t *testing.T) {
	e := newTestEngine()

	res, err := e.ExtractForQuestion("80kg", "weight")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "80kg", res.Value)

	_, err = e.ExtractForQuestion("anything", "shoe_size")
	assert.Error(t, err)
}
