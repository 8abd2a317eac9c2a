package table

import (
	"errors"
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// MaxHands is the most hands a player can hold after splitting
const MaxHands = 4

var (
	ErrNoSuchHand      = errors.New("no such hand")
	ErrCannotHit       = errors.New("hand cannot take another card")
	ErrCannotSplit     = errors.New("hand cannot be split")
	ErrCannotSurrender = errors.New("hand cannot surrender")
	ErrAlreadyInsured  = errors.New("insurance already taken")
	ErrCannotInsure    = errors.New("insurance only on an opening hand")
)

// Player owns between one and four hands and a balance. Balance changes are
// plain additions; nothing here stops it going negative.
type Player struct {
	hands   []*PlayerHand
	balance float64
	bet     int
	insured bool
}

// NewPlayer creates a player with one empty opening hand
func NewPlayer(bet int, balance float64) *Player {
	p := &Player{bet: bet, balance: balance}
	p.ClearHands()
	return p
}

// ClearHands drops every hand and starts over with one opening hand at the
// current bet. Insurance is cleared too.
func (p *Player) ClearHands() {
	p.hands = []*PlayerHand{NewPlayerHand(p.bet, true, false)}
	p.insured = false
}

// PlaceBet sets the bet for the round and takes it from the balance
func (p *Player) PlaceBet(bet int) {
	p.bet = bet
	p.balance -= float64(bet)
	p.hands[0].bet = bet
}

// Hand returns hand i
func (p *Player) Hand(i int) *PlayerHand {
	if i < 0 || i >= len(p.hands) {
		return nil
	}
	return p.hands[i]
}

// Hands returns the player's hands in play order
func (p *Player) Hands() []*PlayerHand {
	return p.hands
}

// NumHands returns how many hands the player holds
func (p *Player) NumHands() int {
	return len(p.hands)
}

// Bet returns the bet placed for the round
func (p *Player) Bet() int {
	return p.bet
}

// Balance returns the current balance
func (p *Player) Balance() float64 {
	return p.balance
}

// Credit adds amount to the balance
func (p *Player) Credit(amount float64) {
	p.balance += amount
}

// IsInsured reports whether insurance was taken this round
func (p *Player) IsInsured() bool {
	return p.insured
}

// AnyStanding reports whether at least one hand is still standing
func (p *Player) AnyStanding() bool {
	for _, h := range p.hands {
		if h.IsStanding() {
			return true
		}
	}
	return false
}

// AddCard deals c to hand i
func (p *Player) AddCard(i int, c deck.Card) error {
	h := p.Hand(i)
	if h == nil {
		return fmt.Errorf("%w: %d", ErrNoSuchHand, i)
	}
	h.AddCard(c)
	return nil
}

// CanHit reports whether hand i may draw. A split Ace that already holds its
// second card is done.
func (p *Player) CanHit(i int) bool {
	h := p.Hand(i)
	if h == nil || h.IsBust() || h.IsStanding() || h.IsSurrendered() {
		return false
	}
	return !(h.IsSplitAces() && h.Len() == 2)
}

// Hit records that hand i takes a card. The engine deals the card.
func (p *Player) Hit(i int) error {
	if !p.CanHit(i) {
		return ErrCannotHit
	}
	p.hands[i].opening = false
	return nil
}

// Stand ends play on hand i
func (p *Player) Stand(i int) error {
	h := p.Hand(i)
	if h == nil {
		return fmt.Errorf("%w: %d", ErrNoSuchHand, i)
	}
	h.opening = false
	h.Stand()
	return nil
}

// CanSurrender reports whether hand i still has exactly its first two cards
func (p *Player) CanSurrender(i int) bool {
	h := p.Hand(i)
	return h != nil && h.Len() == 2
}

// Surrender gives up hand i for half its stake
func (p *Player) Surrender(i int) error {
	if !p.CanSurrender(i) {
		return ErrCannotSurrender
	}
	h := p.hands[i]
	h.opening = false
	h.surrendered = true
	return nil
}

// CanSplit reports whether hand i is a pair and there is room for one more hand
func (p *Player) CanSplit(i int) bool {
	h := p.Hand(i)
	return h != nil && h.IsPair() && len(p.hands) < MaxHands
}

// Split replaces hand i with two one-card hands made from its cards. The new
// second hand costs one more bet.
func (p *Player) Split(i int) error {
	if !p.CanSplit(i) {
		return ErrCannotSplit
	}
	orig := p.hands[i]
	orig.opening = false

	left := NewPlayerHand(p.bet, false, true)
	left.AddCard(orig.cards[0].Fresh())
	right := NewPlayerHand(p.bet, false, true)
	right.AddCard(orig.cards[1].Fresh())

	hands := make([]*PlayerHand, 0, len(p.hands)+1)
	hands = append(hands, p.hands[:i]...)
	hands = append(hands, left, right)
	hands = append(hands, p.hands[i+1:]...)
	p.hands = hands

	p.balance -= float64(p.bet)
	return nil
}

// Double doubles the stake on hand i, paying one more bet. Whether doubling is
// allowed depends on table rules, so the engine checks before calling.
func (p *Player) Double(i int) error {
	h := p.Hand(i)
	if h == nil {
		return fmt.Errorf("%w: %d", ErrNoSuchHand, i)
	}
	h.opening = false
	h.doubled = true
	h.bet = 2 * p.bet
	p.balance -= float64(p.bet)
	return nil
}

// Insure takes insurance for one bet. Only the opening hand can be insured,
// and only once a round.
func (p *Player) Insure() error {
	if p.insured {
		return ErrAlreadyInsured
	}
	if !p.hands[0].IsOpening() {
		return ErrCannotInsure
	}
	p.hands[0].opening = false
	p.insured = true
	p.balance -= float64(p.bet)
	return nil
}
