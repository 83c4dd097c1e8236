// SPDX-License-Identifier: MIT

package labs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRuns(t *testing.T) {
	nan := math.NaN()
	xs := []float64{0, 1, 2, 3, 4, 5, 6}
	ys := []float64{nan, 1, 2, math.Inf(1), nan, 5, 6}

	runs := splitRuns(xs, ys)
	require.Len(t, runs, 2)
	assert.Equal(t, []float64{1, 2}, runs[0].x)
	assert.Equal(t, []float64{5, 6}, runs[1].y)

	assert.Empty(t, splitRuns(xs[:1], ys[:1]))
}

func TestGapRanges(t *testing.T) {
	got := gapRanges(-3, 3, 0.1, []float64{1, 0, 5})
	require.Len(t, got, 3)
	assert.InDelta(t, -2.9, got[0][0], 1e-12)
	assert.InDelta(t, -0.1, got[0][1], 1e-12)
	assert.InDelta(t, 0.1, got[1][0], 1e-12)
	assert.InDelta(t, 0.9, got[1][1], 1e-12)
	assert.InDelta(t, 1.1, got[2][0], 1e-12)
	assert.InDelta(t, 2.9, got[2][1], 1e-12)

	// Poles closer than 2·margin merge their gaps.
	assert.Len(t, gapRanges(-1, 1, 0.1, []float64{0, 0.05}), 2)
}

func TestPaddedRange(t *testing.T) {
	assert.Nil(t, paddedRange(nil, 0.1))

	r := paddedRange([]run{{y: []float64{0, 10}}, {y: []float64{-10}}}, 0.1)
	require.NotNil(t, r)
	assert.InDelta(t, -12, r.Min, 1e-12)
	assert.InDelta(t, 12, r.Max, 1e-12)

	flat := paddedRange([]run{{y: []float64{3, 3}}}, 0.1)
	assert.Equal(t, 2.0, flat.Min)
	assert.Equal(t, 4.0, flat.Max)
}

func TestUpTo(t *testing.T) {
	xs, ys := upTo([]float64{0, 250, 500, 750}, []float64{1, 2, 3, 4}, 500)
	assert.Equal(t, []float64{0, 250, 500}, xs)
	assert.Equal(t, []float64{1, 2, 3}, ys)
}

func TestTrajectory(t *testing.T) {
	const n = 100

	t.Run("DecayStopsEarly", func(t *testing.T) {
		s := solver{finalNorm: 1e-4, iterations: 13, profile: profileDecay}
		tr := s.trajectory(n)
		require.Len(t, tr, n)
		assert.Equal(t, 1.0, tr[0])
		for i := 1; i < 13; i++ {
			assert.Less(t, tr[i], tr[i-1], "monotone decay at %d", i)
		}
		assert.InDelta(t, 1e-4, tr[12], 1e-16)
		assert.Equal(t, 1e-4, tr[n-1])
	})

	t.Run("Growth", func(t *testing.T) {
		tr := solver{finalNorm: 1e6, iterations: n, profile: profileGrowth}.trajectory(n)
		assert.InDelta(t, 1e6, tr[n-1], 1e-3)
		assert.Greater(t, tr[n/2], tr[0])
	})

	t.Run("Dip", func(t *testing.T) {
		tr := solver{finalNorm: 1e3, iterations: n, profile: profileDip}.trajectory(n)
		require.Len(t, tr, n)
		assert.InDelta(t, dipFloor, tr[n/2-1], 1e-12)
		assert.InDelta(t, 1e3, tr[n-1], 1e-6)
	})

	t.Run("Oscillating", func(t *testing.T) {
		tr := solver{finalNorm: 1000, iterations: n, profile: profileOscillating}.trajectory(n)
		require.Len(t, tr, n)
		assert.InDelta(t, 1000, tr[n-1], 1000*rippleFraction)
	})
}

func TestParseFlag(t *testing.T) {
	for in, want := range map[string]bool{"tak": true, " Yes ": true, "1": true, "nie": false, "FALSE": false, "n": false} {
		got, err := parseFlag(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseFlag("maybe")
	assert.ErrorIs(t, err, ErrBadTable)
}
