package stats

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvlab/engcalc/common"
)

func TestSigmaMask(t *testing.T) {
	// mean ~= 19.167, population std ~= 36.17: the five small values
	// stay within one sigma, the outlier does not
	data := []float64{1, 2, 3, 4, 5, 100}

	mask, err := SigmaMask(data)
	require.NoError(t, err)
	require.Len(t, mask, len(data))

	assert.Equal(t, []bool{true, true, true, true, true, false}, mask)
}

func TestSigmaMaskEmpty(t *testing.T) {
	_, err := SigmaMask(nil)
	assert.ErrorIs(t, err, common.ErrorInvalidType)
}

func TestSigmaFilter(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 100}

	filtered, err := SigmaFilter(data)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 4, 5}, filtered)
}

func TestIntervalMidpoints(t *testing.T) {
	midpoints, err := IntervalMidpoints([]float64{0, 2, 4, 6})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 3, 5}, midpoints)
}

func TestIntervalMidpointsBounds(t *testing.T) {
	edges := []float64{-3.5, -1, 0.25, 7, 19}

	midpoints, err := IntervalMidpoints(edges)
	require.NoError(t, err)
	require.Len(t, midpoints, len(edges)-1)

	for i, m := range midpoints {
		assert.Greater(t, m, edges[i])
		assert.Less(t, m, edges[i+1])
	}
}

func TestIntervalMidpointsTooShort(t *testing.T) {
	_, err := IntervalMidpoints([]float64{1})
	assert.ErrorIs(t, err, common.ErrorInvalidType)
}

func TestPhi(t *testing.T) {
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), Phi(0), 1e-12)

	for _, u := range []float64{0.1, 0.5, 1, 2, 3.7, 10} {
		assert.InDelta(t, Phi(u), Phi(-u), 1e-15)
	}

	// standard table value at u = 1
	assert.InDelta(t, 0.2419707, Phi(1), 1e-6)
}

func TestPhiSlice(t *testing.T) {
	res := PhiSlice([]float64{-1, 0, 1})

	require.Len(t, res, 3)
	assert.Equal(t, res[0], res[2])
	assert.InDelta(t, 0.3989422804014327, res[1], 1e-15)
}

func TestMovingAverage(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}

	res, err := MovingAverage(data, 2)
	require.NoError(t, err)
	require.Len(t, res, len(data))

	assert.True(t, math.IsNaN(res[0]))
	assert.True(t, math.IsNaN(res[1]))
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 4.5}, res[2:])
}

func TestMovingAverageBadWindow(t *testing.T) {
	_, err := MovingAverage([]float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestDistance(t *testing.T) {
	dist, err := Distance([]float64{1, 2, 3}, []float64{1, 2, 4}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, dist, 1e-12)

	dist, err = Distance([]float64{1, 2, 3}, []float64{1, 2, 4}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 7, dist, 1e-12)
}

func TestDistanceErrors(t *testing.T) {
	_, err := Distance([]float64{1}, []float64{1, 2}, 1)
	assert.ErrorIs(t, err, common.ErrorInvalidType)

	_, err = Distance([]float64{1}, []float64{1}, 0)
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestZStarTable(t *testing.T) {
	table := ZStarTable()

	assert.True(t, strings.Contains(table, "2.576"))
	assert.True(t, strings.Contains(table, "1.96"))
	assert.True(t, strings.Contains(table, "z*"))
}
