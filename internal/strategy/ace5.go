package strategy

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/table"
)

// Ace5 counts Aces against fives. Two or more surplus fives double the bet,
// anything else drops back to the minimum.
type Ace5 struct {
	limits  Limits
	count   int
	current int
}

// NewAce5 creates an Ace5 strategy with a zero count
func NewAce5(limits Limits) *Ace5 {
	return &Ace5{limits: limits, current: limits.MinBet}
}

func (a *Ace5) Name() string { return "Ace5" }

func (a *Ace5) UpdateCount(c deck.Card) {
	switch c.Rank {
	case deck.Ace:
		a.count--
	case deck.Five:
		a.count++
	}
}

func (a *Ace5) ResetCount() { a.count = 0 }

// Count returns the running Ace/five count
func (a *Ace5) Count() int { return a.count }

func (a *Ace5) NextBet() int {
	if a.count >= 2 {
		return min(2*a.current, a.limits.MaxBet)
	}
	return a.limits.MinBet
}

func (a *Ace5) SetBet(bet int) { a.current = bet }

func (a *Ace5) RecordOutcome(table.Outcome) {}
