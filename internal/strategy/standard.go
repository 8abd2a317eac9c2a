package strategy

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/table"
)

// Standard ignores the cards. It walks the bet up one minimum unit after a
// win and down one unit after a loss, staying inside the table limits.
type Standard struct {
	limits  Limits
	current int
	next    int
}

// NewStandard creates a Standard strategy starting at the minimum bet
func NewStandard(limits Limits) *Standard {
	return &Standard{limits: limits, current: limits.MinBet, next: limits.MinBet}
}

func (s *Standard) Name() string { return "Standard Bet" }

func (s *Standard) UpdateCount(deck.Card) {}

func (s *Standard) ResetCount() {}

func (s *Standard) NextBet() int { return s.next }

func (s *Standard) SetBet(bet int) { s.current = bet }

// RecordOutcome moves the bet by one unit in the direction of the result.
// The new bet is both the advice and the baseline for the next update.
func (s *Standard) RecordOutcome(o table.Outcome) {
	switch o {
	case table.Win:
		s.next = min(s.current+s.limits.MinBet, s.limits.MaxBet)
	case table.Lose:
		s.next = max(s.current-s.limits.MinBet, s.limits.MinBet)
	default:
		s.next = s.current
	}
	s.current = s.next
}
