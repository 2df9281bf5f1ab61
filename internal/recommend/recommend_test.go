package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

func insights(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Insight
	}
	return out
}

func TestGenerateEmptyData(t *testing.T) {
	cards := Generate(types.NewCollectedData())
	require.Len(t, cards, 1)
	assert.Equal(t, "No risk factors identified so far", cards[0].Insight)
}

func TestGenerateSmoker(t *testing.T) {
	data := types.NewCollectedData()
	data.Set("personal", "smokingStatus", "Current smoker")

	cards := Generate(data)
	assert.Contains(t, insights(cards), "Applicant is a Current smoker")

	data.Set("personal", "smokingStatus", "Former smoker")
	cards = Generate(data)
	assert.Contains(t, insights(cards), "Applicant is a former smoker")

	data.Set("personal", "smokingStatus", "Never smoked")
	cards = Generate(data)
	assert.Equal(t, "No risk factors identified so far", cards[0].Insight)
}

func TestGenerateDependents(t *testing.T) {
	data := types.NewCollectedData()
	data.Set("personal", "hasDependents", true)
	data.Set("personal", "numDependents", 2)

	cards := Generate(data)
	assert.Contains(t, insights(cards), "Applicant has 2 dependents")
	require.NotEmpty(t, cards)
	assert.Contains(t, cards[0].Action, "family income benefit")
}

func TestGenerateBMI(t *testing.T) {
	data := types.NewCollectedData()
	data.Set("personal", "height", "150cm")
	data.Set("personal", "weight", "95kg")

	cards := Generate(data)
	// 95kg at 1.5m is a BMI of 42.2.
	assert.Contains(t, insights(cards)[0], "BMI of 42.2")

	normal := types.NewCollectedData()
	normal.Set("personal", "height", `5'10"`)
	normal.Set("personal", "weight", "75kg")
	cards = Generate(normal)
	assert.Equal(t, "No risk factors identified so far", cards[0].Insight)
}

func TestGenerateSelfEmployedAndResidency(t *testing.T) {
	data := types.NewCollectedData()
	data.Set("personal", "employmentStatus", "Self-employed")
	data.Set("personal", "ukResident", false)

	cards := Generate(data)
	got := insights(cards)
	assert.Contains(t, got, "Applicant is self-employed")
	assert.Contains(t, got, "Applicant is not a UK resident")
}
