package statistics

import (
	"fmt"
	"math"
	"sort"
)

// HandResult is the settled outcome of one player hand
type HandResult struct {
	Outcome   int     // 1 win, 0 push, -1 loss
	Blackjack bool    // two-card 21
	Net       float64 // amount won or lost relative to the stake
	Split     bool    // hand came from a split
	Doubled   bool
}

// Statistics tracks session statistics for the player and the dealer.
// Rates are per hand played; split hands count as extra hands played.
type Statistics struct {
	InitialBalance float64

	PlayerHands      int
	PlayerBlackjacks int
	DealerHands      int
	DealerBlackjacks int

	Wins   int
	Losses int
	Pushes int

	// Net result per settled hand, for mean and variance
	Settled int
	SumNet  float64
	SumNet2 float64
	Values  []float64

	SplitHands   int
	DoubledHands int
}

// New creates statistics for a session starting at balance
func New(balance float64) *Statistics {
	return &Statistics{InitialBalance: balance}
}

// Add incorporates a settled player hand
func (s *Statistics) Add(result HandResult) {
	switch {
	case result.Outcome > 0:
		s.Wins++
	case result.Outcome < 0:
		s.Losses++
	default:
		s.Pushes++
	}
	if result.Blackjack {
		s.PlayerBlackjacks++
	}
	if result.Split {
		s.SplitHands++
	}
	if result.Doubled {
		s.DoubledHands++
	}

	s.Settled++
	s.SumNet += result.Net
	s.SumNet2 += result.Net * result.Net
	s.Values = append(s.Values, result.Net)
}

func rate(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return float64(n) / float64(of)
}

// PlayerBlackjackRate returns player blackjacks per player hand played
func (s *Statistics) PlayerBlackjackRate() float64 {
	return rate(s.PlayerBlackjacks, s.PlayerHands)
}

// DealerBlackjackRate returns dealer blackjacks per dealer hand played
func (s *Statistics) DealerBlackjackRate() float64 {
	return rate(s.DealerBlackjacks, s.DealerHands)
}

// WinRate returns wins per player hand played
func (s *Statistics) WinRate() float64 { return rate(s.Wins, s.PlayerHands) }

// LossRate returns losses per player hand played
func (s *Statistics) LossRate() float64 { return rate(s.Losses, s.PlayerHands) }

// PushRate returns pushes per player hand played
func (s *Statistics) PushRate() float64 { return rate(s.Pushes, s.PlayerHands) }

// Gain returns balance as a fraction of the starting balance
func (s *Statistics) Gain(balance float64) float64 {
	if s.InitialBalance == 0 {
		return 0
	}
	return balance / s.InitialBalance
}

// Mean returns the average net result per settled hand
func (s *Statistics) Mean() float64 {
	if s.Settled == 0 {
		return 0
	}
	return s.SumNet / float64(s.Settled)
}

// Variance returns the sample variance of the net result per hand
func (s *Statistics) Variance() float64 {
	if s.Settled < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumNet2 - float64(s.Settled)*mean*mean) / float64(s.Settled-1)
	// rounding can leave a tiny negative
	return max(v, 0)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Settled == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Settled))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median net result
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Wins+s.Losses+s.Pushes != s.Settled {
		return fmt.Errorf("outcomes (%d) do not match settled hands (%d)",
			s.Wins+s.Losses+s.Pushes, s.Settled)
	}
	if len(s.Values) != s.Settled {
		return fmt.Errorf("values array length (%d) does not match settled hands (%d)",
			len(s.Values), s.Settled)
	}
	if s.Settled > s.PlayerHands {
		return fmt.Errorf("settled hands (%d) exceed hands played (%d)", s.Settled, s.PlayerHands)
	}
	if s.PlayerBlackjacks > s.PlayerHands {
		return fmt.Errorf("player blackjacks (%d) exceed hands played (%d)", s.PlayerBlackjacks, s.PlayerHands)
	}
	if s.DealerBlackjacks > s.DealerHands {
		return fmt.Errorf("dealer blackjacks (%d) exceed hands played (%d)", s.DealerBlackjacks, s.DealerHands)
	}
	return nil
}
