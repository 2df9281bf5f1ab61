package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightToCm(t *testing.T) {
	assert.InDelta(t, 172.72, HeightToCm("5ft 8in"), 0.01)
	assert.InDelta(t, 172.72, HeightToCm(`5'8"`), 0.01)
	assert.InDelta(t, 152.4, HeightToCm("5 feet"), 0.01)
	assert.InDelta(t, 175, HeightToCm("175cm"), 0.01)
	assert.InDelta(t, 175, HeightToCm("1.75m"), 0.01)
	assert.Zero(t, HeightToCm("tall"))
}

func TestWeightToKg(t *testing.T) {
	assert.InDelta(t, 78.47, WeightToKg("12st 5lb"), 0.01)
	assert.InDelta(t, 76.2, WeightToKg("12 stone"), 0.01)
	assert.InDelta(t, 80, WeightToKg("80kg"), 0.01)
	assert.InDelta(t, 80.5, WeightToKg("80.5kg"), 0.01)
	assert.InDelta(t, 77.11, WeightToKg("170lbs"), 0.01)
	assert.Zero(t, WeightToKg("heavy"))
}
