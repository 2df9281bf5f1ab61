package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryKeys(t *testing.T) {
	r := NewRegistry()
	keys := r.Keys()
	assert.Len(t, keys, 10)
	assert.Contains(t, keys, KeyUKResident)
	assert.Contains(t, keys, KeyWeight)
	// Keys come back sorted.
	for i := 1; i < len(keys); i++ {
		assert.Less(t, string(keys[i-1]), string(keys[i]))
	}
}

func TestApplyUnknownKey(t *testing.T) {
	r := NewRegistry()
	_, err := r.Apply(Key("postcode"), "SW1A 1AA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown extractor")
}

func TestApplyNoMatch(t *testing.T) {
	r := NewRegistry()
	res, err := r.Apply(KeyHeight, "I like long walks")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "no matching pattern found", res.Reason)
	assert.NotEmpty(t, res.Suggestions)
	assert.Nil(t, res.Value)
}

func TestApplyNormalizesInput(t *testing.T) {
	r := NewRegistry()
	upper, err := r.Apply(KeyMaritalStatus, "  I AM MARRIED  ")
	require.NoError(t, err)
	lower, err2 := r.Apply(KeyMaritalStatus, "i am married")
	require.NoError(t, err2)
	assert.Equal(t, lower, upper)
	assert.Equal(t, "Married", upper.Value)
}
