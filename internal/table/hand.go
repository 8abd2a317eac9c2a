// Package table holds the blackjack entities that sit at the table: hands,
// the player with up to four of them, and the dealer with the shoe.
package table

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// BlackjackTotal is the best possible hand total
const BlackjackTotal = 21

// Hand is an ordered run of cards with a live total.
type Hand struct {
	cards    []deck.Card
	total    int
	bust     bool
	standing bool
	hole     bool // second card stays face down (dealer)
}

// NewHand creates an empty hand whose cards are all dealt face up
func NewHand() *Hand {
	return &Hand{}
}

// NewDealerHand creates an empty hand whose second card is the hole card
func NewDealerHand() *Hand {
	return &Hand{hole: true}
}

// AddCard appends c, turning it face up unless it is the hole card, and
// re-totals the hand. While the total is over 21 soft Aces are downgraded one
// at a time, first one first. A hand still over 21 is bust for good.
func (h *Hand) AddCard(c deck.Card) {
	c.FaceUp = !(h.hole && len(h.cards) == 1)
	h.cards = append(h.cards, c)
	h.total += c.Value()

	for i := 0; h.total > BlackjackTotal && i < len(h.cards); i++ {
		if h.cards[i].IsSoft() {
			h.cards[i].Harden()
			h.total -= 10
		}
	}

	if h.total > BlackjackTotal {
		h.bust = true
	}
}

// RevealHole turns the hole card face up and returns it.
func (h *Hand) RevealHole() (deck.Card, bool) {
	if len(h.cards) < 2 {
		return deck.Card{}, false
	}
	h.cards[1].FaceUp = true
	return h.cards[1], true
}

// Total returns the current hand total
func (h *Hand) Total() int {
	return h.total
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// IsBust reports whether the total went over 21
func (h *Hand) IsBust() bool {
	return h.bust
}

// IsStanding reports whether the hand has stood
func (h *Hand) IsStanding() bool {
	return h.standing
}

// Stand marks the hand as standing
func (h *Hand) Stand() {
	h.standing = true
}

// IsBlackjack reports a two-card 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.total == BlackjackTotal
}

// IsSoft reports whether an Ace in the hand is still counted as 11
func (h *Hand) IsSoft() bool {
	for _, c := range h.cards {
		if c.IsSoft() {
			return true
		}
	}
	return false
}

// First returns the first card dealt to the hand (the dealer's up card)
func (h *Hand) First() deck.Card {
	if len(h.cards) == 0 {
		return deck.Card{}
	}
	return h.cards[0]
}

// Cards returns a copy of every card in the hand, hidden ones included
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// VisibleCards returns only the face-up cards
func (h *Hand) VisibleCards() []deck.Card {
	out := make([]deck.Card, 0, len(h.cards))
	for _, c := range h.cards {
		if c.FaceUp {
			out = append(out, c)
		}
	}
	return out
}

// Reset empties the hand for the next round
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
	h.total = 0
	h.bust = false
	h.standing = false
}

// String renders the cards with the total, e.g. "10H 5D (15)". The total is
// left off while the hole card is still down.
func (h *Hand) String() string {
	var b strings.Builder
	for _, c := range h.cards {
		b.WriteString(c.String())
		b.WriteByte(' ')
	}
	if len(h.cards) < 2 || h.cards[1].FaceUp {
		fmt.Fprintf(&b, "(%d)", h.total)
	}
	return strings.TrimSpace(b.String())
}
