package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatioSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, RatioSimilarity(500, 500))
	assert.Equal(t, 0.5, RatioSimilarity(250, 500))
	assert.Equal(t, 0.5, RatioSimilarity(500, 250))
	assert.Equal(t, 1.0, RatioSimilarity(0, 0))
	assert.Equal(t, 0.0, RatioSimilarity(0, 500))
	assert.Equal(t, 0.0, RatioSimilarity(500, 0))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.3))
	assert.Equal(t, 0.42, Clamp01(0.42))
	assert.Equal(t, 1.0, Clamp01(1.7))
}
