package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_Empty(t *testing.T) {
	stats := New(500)

	assert.Equal(t, 0.0, stats.Mean())
	assert.Equal(t, 0.0, stats.Variance())
	assert.Equal(t, 0.0, stats.StdDev())
	assert.Equal(t, 0.0, stats.StdError())
	assert.Equal(t, 0.0, stats.Median())
	assert.Equal(t, 0.0, stats.Percentile(0.5))
	assert.Equal(t, 0.0, stats.WinRate())
	assert.Equal(t, 0.0, stats.PlayerBlackjackRate())
	assert.Equal(t, 0.0, stats.DealerBlackjackRate())
	assert.NoError(t, stats.Validate())
}

func TestStatistics_Rates(t *testing.T) {
	stats := New(500)
	stats.PlayerHands = 4
	stats.DealerHands = 3

	stats.Add(HandResult{Outcome: 1, Blackjack: true, Net: 15})
	stats.Add(HandResult{Outcome: -1, Net: -10})
	stats.Add(HandResult{Outcome: 0, Net: 0, Split: true})
	stats.Add(HandResult{Outcome: 1, Net: 20, Split: true, Doubled: true})
	stats.DealerBlackjacks = 1

	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 1, stats.Pushes)
	assert.Equal(t, 2, stats.SplitHands)
	assert.Equal(t, 1, stats.DoubledHands)

	assert.Equal(t, 0.5, stats.WinRate())
	assert.Equal(t, 0.25, stats.LossRate())
	assert.Equal(t, 0.25, stats.PushRate())
	assert.Equal(t, 0.25, stats.PlayerBlackjackRate())
	assert.InDelta(t, 1.0/3.0, stats.DealerBlackjackRate(), 1e-9)
	require.NoError(t, stats.Validate())
}

func TestStatistics_Gain(t *testing.T) {
	stats := New(500)
	assert.Equal(t, 1.1, stats.Gain(550))
	assert.Equal(t, 0.0, New(0).Gain(100))
}

func TestStatistics_MeanAndVariance(t *testing.T) {
	stats := New(500)
	values := []float64{10, -10, 15, -10, 0}
	stats.PlayerHands = len(values)
	for _, v := range values {
		outcome := 0
		if v > 0 {
			outcome = 1
		} else if v < 0 {
			outcome = -1
		}
		stats.Add(HandResult{Outcome: outcome, Net: v})
	}

	assert.InDelta(t, 1.0, stats.Mean(), 1e-9)
	// sum of squared deviations 81+121+196+121+1 = 520, over n-1
	assert.InDelta(t, 130.0, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(130), stats.StdDev(), 1e-9)
	assert.InDelta(t, math.Sqrt(130)/math.Sqrt(5), stats.StdError(), 1e-9)
	assert.Equal(t, 0.0, stats.Median())
	assert.Equal(t, -10.0, stats.Percentile(0))
	assert.Equal(t, 15.0, stats.Percentile(1))

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, stats.Mean())
	assert.Greater(t, high, stats.Mean())
}

func TestStatistics_Validate(t *testing.T) {
	t.Run("settled exceeds played", func(t *testing.T) {
		stats := New(500)
		stats.Add(HandResult{Outcome: 1, Net: 10})
		assert.Error(t, stats.Validate())
	})

	t.Run("values out of sync", func(t *testing.T) {
		stats := New(500)
		stats.PlayerHands = 1
		stats.Add(HandResult{Outcome: 1, Net: 10})
		stats.Values = nil
		assert.Error(t, stats.Validate())
	})

	t.Run("dealer blackjacks exceed hands", func(t *testing.T) {
		stats := New(500)
		stats.DealerBlackjacks = 1
		assert.Error(t, stats.Validate())
	})
}
