package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 7.125, Mean([]float64{3.5, 0.3, 13.0, 11.7}))
	assert.Equal(t, 2.0, Mean([]float64{2.0}))
	assert.Equal(t, 0.0, Mean([]float64{-1.5, 1.5}))
}

func TestMeanEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(Mean(nil)))
	assert.True(t, math.IsNaN(Mean([]float64{})))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 28.5, Sum([]float64{3.5, 0.3, 13.0, 11.7}))
	assert.Equal(t, 0.0, Sum(nil))
}
