package table

import "github.com/lox/blackjack/internal/deck"

// PlayerHand is a Hand with a stake and the per-hand flags that drive which
// moves are legal.
type PlayerHand struct {
	Hand
	bet         int
	opening     bool
	pair        bool
	doubled     bool
	split       bool
	surrendered bool
}

// NewPlayerHand creates an empty player hand
func NewPlayerHand(bet int, opening, split bool) *PlayerHand {
	return &PlayerHand{bet: bet, opening: opening, split: split}
}

// AddCard adds a face-up card and recomputes the pair flag
func (h *PlayerHand) AddCard(c deck.Card) {
	h.Hand.AddCard(c)
	h.pair = len(h.cards) == 2 && h.cards[0].SameValue(h.cards[1])
}

// Bet returns the stake on this hand
func (h *PlayerHand) Bet() int { return h.bet }

// IsOpening reports whether no move has been made on the hand yet
func (h *PlayerHand) IsOpening() bool { return h.opening }

// IsPair reports whether the hand is exactly two cards of equal value
func (h *PlayerHand) IsPair() bool { return h.pair }

// IsDoubled reports whether the stake was doubled
func (h *PlayerHand) IsDoubled() bool { return h.doubled }

// IsSplit reports whether the hand came from splitting a pair
func (h *PlayerHand) IsSplit() bool { return h.split }

// IsSurrendered reports whether the hand was given up for half the stake
func (h *PlayerHand) IsSurrendered() bool { return h.surrendered }

// IsSplitAces reports a hand seeded by splitting a pair of Aces
func (h *PlayerHand) IsSplitAces() bool {
	return h.split && h.First().IsAce()
}
