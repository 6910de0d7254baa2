package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 1))
	assert.True(t, IsInRange(0, 1, 1))
	assert.False(t, IsInRange(0, 2, 1))
	assert.False(t, IsInRange(int64(0), -1, 1))
	assert.True(t, IsInRange(0.0, 0.5, 1.0))
	assert.False(t, IsInRange(0.0, math.NaN(), 1.0))
	assert.True(t, IsInRange("a", "m", "z"))
}
