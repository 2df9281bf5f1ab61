package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUKResident(t *testing.T) {
	r := NewRegistry()

	res, err := r.Apply(KeyUKResident, "Yes, I am a UK resident")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, true, res.Value)
	assert.GreaterOrEqual(t, res.Confidence, 0.9)

	res, err = r.Apply(KeyUKResident, "No")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, false, res.Value)

	res, err = r.Apply(KeyUKResident, "I live in the UK")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, true, res.Value)
	assert.InDelta(t, 0.9, res.Confidence, 0.001)
}

func TestMaritalStatus(t *testing.T) {
	r := NewRegistry()

	res, err := r.Apply(KeyMaritalStatus, "I am divorced")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "Divorced", res.Value)
	assert.GreaterOrEqual(t, res.Confidence, 0.9)

	cases := map[string]string{
		"I'm married":               "Married",
		"single":                    "Single",
		"I was widowed last year":   "Widowed",
		"we are separated":          "Separated",
		"we're in a civil partnership": "Civil Partnership",
	}
	for msg, want := range cases {
		res, err := r.Apply(KeyMaritalStatus, msg)
		require.NoError(t, err, msg)
		require.True(t, res.Success, msg)
		assert.Equal(t, want, res.Value, msg)
	}

	res, err = r.Apply(KeyMaritalStatus, "I'm with someone")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "In a relationship", res.Value)
	assert.InDelta(t, 0.7, res.Confidence, 0.001)
}

func TestBooleanResponse(t *testing.T) {
	r := NewRegistry()

	res, err := r.Apply(KeyBooleanResponse, "Yes")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, true, res.Value)
	assert.InDelta(t, 0.95, res.Confidence, 0.001)

	res, err = r.Apply(KeyBooleanResponse, "No")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, false, res.Value)
	assert.InDelta(t, 0.95, res.Confidence, 0.001)

	// A marital answer implies no dependents, at reduced confidence.
	res, err = r.Apply(KeyBooleanResponse, "I am single")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, false, res.Value)
	assert.InDelta(t, 0.75, res.Confidence, 0.001)

	res, err = r.Apply(KeyBooleanResponse, "I have kids")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, true, res.Value)
}

func TestNumber(t *testing.T) {
	r := NewRegistry()

	res, err := r.Apply(KeyNumber, "I have 3 children")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 3, res.Value)
	assert.InDelta(t, 0.9, res.Confidence, 0.001)

	res, err = r.Apply(KeyNumber, "I have two children")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 2, res.Value)
	assert.InDelta(t, 0.85, res.Confidence, 0.001)

	res, err = r.Apply(KeyNumber, "fourteen")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 14, res.Value)

	res, err = r.Apply(KeyNumber, "none")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 0, res.Value)
	assert.InDelta(t, 0.8, res.Confidence, 0.001)
}

func TestAge(t *testing.T) {
	r := NewRegistry()

	res, err := r.Apply(KeyAge, "they are 5 to 10 years old")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "5-10", res.Value)
	assert.InDelta(t, 0.9, res.Confidence, 0.001)

	res, err = r.Apply(KeyAge, "around 8")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "~8", res.Value)
	assert.InDelta(t, 0.7, res.Confidence, 0.001)

	res, err = r.Apply(KeyAge, "12 years old")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 12, res.Value)

	res, err = r.Apply(KeyAge, "she's a toddler")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "1-3", res.Value)
	assert.InDelta(t, 0.6, res.Confidence, 0.001)

	res, err = r.Apply(KeyAge, "a teenager")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "13-19", res.Value)
}

func TestEmploymentStatus(t *testing.T) {
	r := NewRegistry()

	cases := []struct {
		msg  string
		want string
	}{
		{"I am self-employed", "Self-employed"},
		{"I'm unemployed at the moment", "Unemployed"},
		{"I'm retired", "Retired"},
		{"I'm a student", "Student"},
		{"I'm between jobs", "Unemployed"},
		{"I'm a freelancer", "Self-employed"},
		{"I work full-time", "Employed"},
	}
	for _, tc := range cases {
		res, err := r.Apply(KeyEmploymentStatus, tc.msg)
		require.NoError(t, err, tc.msg)
		require.True(t, res.Success, tc.msg)
		assert.Equal(t, tc.want, res.Value, tc.msg)
	}

	res, err := r.Apply(KeyEmploymentStatus, "I am employed")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "Employed", res.Value)
	assert.InDelta(t, 0.9, res.Confidence, 0.001)
}

func TestOccupation(t *testing.T) {
	r := NewRegistry()

	res, err := r.Apply(KeyOccupation, "I am a teacher")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "teacher", res.Value)
	assert.InDelta(t, 0.9, res.Confidence, 0.001)

	res, err = r.Apply(KeyOccupation, "I work as an engineer at a big firm")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "engineer", res.Value)

	res, err = r.Apply(KeyOccupation, "nurse")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "nurse", res.Value)
}

func TestSmokingStatus(t *testing.T) {
	r := NewRegistry()

	res, err := r.Apply(KeySmokingStatus, "I don't smoke")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "Never smoked", res.Value)

	res, err = r.Apply(KeySmokingStatus, "I used to smoke")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "Former smoker", res.Value)

	res, err = r.Apply(KeySmokingStatus, "I smoke cigarettes")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "Current smoker", res.Value)

	res, err = r.Apply(KeySmokingStatus, "I quit smoking two years ago")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "Former smoker", res.Value)

	res, err = r.Apply(KeySmokingStatus, "I vape")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "Vaper", res.Value)
}

func TestHeight(t *testing.T) {
	r := NewRegistry()

	res, err := r.Apply(KeyHeight, "I'm 5ft 8in")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, `5'8"`, res.Value)
	assert.InDelta(t, 0.9, res.Confidence, 0.001)

	res, err = r.Apply(KeyHeight, "175cm")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "175cm", res.Value)

	res, err = r.Apply(KeyHeight, "about 1.75m")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "1.75m", res.Value)

	// Out-of-range heights fail validation, not formatting.
	res, err = r.Apply(KeyHeight, "400cm")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "validation failed", res.Reason)
	assert.NotEmpty(t, res.Suggestions)
}

func TestWeight(t *testing.T) {
	r := NewRegistry()

	res, err := r.Apply(KeyWeight, "12st 7lb")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "12st 7lb", res.Value)
	assert.InDelta(t, 0.9, res.Confidence, 0.001)

	res, err = r.Apply(KeyWeight, "I weigh 80kg")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "80kg", res.Value)

	// Decimal kilograms stay one value.
	res, err = r.Apply(KeyWeight, "80.5kg")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "80.5kg", res.Value)

	res, err = r.Apply(KeyWeight, "170lbs")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "170lb", res.Value)

	res, err = r.Apply(KeyWeight, "500kg")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "validation failed", res.Reason)
}
