package game

import (
	"math"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/strategy"
	"github.com/lox/blackjack/internal/table"
)

// Table rule defaults
const (
	DefaultDoubleMin      = 9
	DefaultDoubleMax      = 11
	DefaultShufflePercent = 100
)

// Rules are the table parameters for a session
type Rules struct {
	MinBet int
	MaxBet int

	// DoubleMin and DoubleMax bound the hand totals that may double down
	DoubleMin int
	DoubleMax int

	// DealerStandsOn is the total at which the dealer stops drawing
	DealerStandsOn int

	// ShufflePercent is the shoe penetration, as a percentage of all cards,
	// after which the shoe is shuffled before the next round
	ShufflePercent int

	// AutoShuffle shuffles before the first round and at the penetration
	// point. Off when the shoe order comes from a file.
	AutoShuffle bool
}

// DefaultRules returns the standard rules for the given bet limits
func DefaultRules(minBet, maxBet int) Rules {
	return Rules{
		MinBet:         minBet,
		MaxBet:         maxBet,
		DoubleMin:      DefaultDoubleMin,
		DoubleMax:      DefaultDoubleMax,
		DealerStandsOn: table.DefaultDealerStand,
		ShufflePercent: DefaultShufflePercent,
		AutoShuffle:    true,
	}
}

// Limits returns the subset of the rules the strategies need
func (r Rules) Limits() strategy.Limits {
	return strategy.Limits{
		MinBet:    r.MinBet,
		MaxBet:    r.MaxBet,
		DoubleMin: r.DoubleMin,
		DoubleMax: r.DoubleMax,
	}
}

// ShuffleThreshold returns how many dealt cards trigger a shuffle
func (r Rules) ShuffleThreshold(decks int) int {
	return int(math.Ceil(float64(r.ShufflePercent) / 100 * float64(decks*deck.CardsPerDeck)))
}

// ValidBet reports whether amount is inside the table limits
func (r Rules) ValidBet(amount int) bool {
	return amount >= r.MinBet && amount <= r.MaxBet
}

// CanDouble reports whether h may double down at the given bet: exactly two
// cards, a total inside the double range and a doubled stake within the limit.
func (r Rules) CanDouble(h *table.PlayerHand, bet int) bool {
	return h.Len() == 2 &&
		h.Total() >= r.DoubleMin && h.Total() <= r.DoubleMax &&
		2*bet <= r.MaxBet
}
