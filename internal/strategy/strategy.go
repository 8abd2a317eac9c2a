// Package strategy implements the card-counting betting strategies and the
// playing-advice tables the simulator and the advice command consult.
package strategy

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/table"
)

// Limits are the table limits the strategies reason about.
type Limits struct {
	MinBet    int
	MaxBet    int
	DoubleMin int
	DoubleMax int
}

// Betting produces the stake for the next round.
type Betting interface {
	Name() string
	// UpdateCount observes a card as it becomes visible
	UpdateCount(c deck.Card)
	// ResetCount is called on every shuffle
	ResetCount()
	NextBet() int
	// SetBet records the bet actually placed
	SetBet(bet int)
	// RecordOutcome is called once per settled hand
	RecordOutcome(o table.Outcome)
}

// Playing advises the next move for a hand.
type Playing interface {
	Name() string
	NextPlay(nHands int, hand *table.PlayerHand, dealer *table.Hand, bet int) table.Move
	UpdateCount(c deck.Card)
	ResetCount()
}

// options are the moves a hand could legally make right now
type options struct {
	double    bool
	split     bool
	surrender bool
	insure    bool
}

func (l Limits) options(nHands int, h *table.PlayerHand, bet int) options {
	twoCards := h.Len() == 2
	return options{
		double:    twoCards && h.Total() >= l.DoubleMin && h.Total() <= l.DoubleMax && 2*bet <= l.MaxBet,
		split:     nHands < table.MaxHands,
		surrender: twoCards,
		insure:    h.IsOpening(),
	}
}

// isHard reports a hand with no Ace still counted as 11
func isHard(h *table.PlayerHand) bool {
	return !h.IsSoft()
}
