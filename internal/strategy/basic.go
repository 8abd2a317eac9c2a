package strategy

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/table"
)

// Basic is the count-independent basic strategy chart. Pairs are looked up
// first, then hard or soft totals depending on whether an Ace is still
// counted as 11.
type Basic struct {
	limits Limits
}

// NewBasic creates the basic strategy for the given table limits
func NewBasic(limits Limits) *Basic {
	return &Basic{limits: limits}
}

func (b *Basic) Name() string { return "Basic" }

func (b *Basic) UpdateCount(deck.Card) {}

func (b *Basic) ResetCount() {}

// NextPlay looks the hand up in the chart against the dealer's up card
func (b *Basic) NextPlay(nHands int, hand *table.PlayerHand, dealer *table.Hand, bet int) table.Move {
	opts := b.limits.options(nHands, hand, bet)
	up := dealer.First()

	switch {
	case hand.IsPair():
		return b.pair(hand, up, opts)
	case isHard(hand):
		return b.hard(hand.Total(), up, opts)
	default:
		return b.soft(hand.Total(), up.BaseValue(), opts)
	}
}

func (b *Basic) hard(total int, up deck.Card, opts options) table.Move {
	d := up.BaseValue()
	switch {
	case total >= 5 && total <= 8:
		return table.Hit
	case up.IsAce() && total <= 15:
		return table.Hit
	case total == 9 && (d == 2 || (d >= 7 && d <= 10)):
		return table.Hit
	case total >= 12 && total <= 14 && d >= 7 && d <= 10:
		return table.Hit
	case total == 15 && d >= 7 && d <= 9:
		return table.Hit
	case total == 16 && (d == 7 || d == 8):
		return table.Hit
	case total == 10 && d == 10:
		return table.Hit
	case total >= 17 && total <= table.BlackjackTotal:
		return table.Stand
	case total >= 13 && total <= 16 && d <= 6:
		return table.Stand
	case total == 12 && d >= 4 && d <= 6:
		return table.Stand
	case total >= 9 && total <= 11:
		if opts.double {
			return table.DoubleThenStand
		}
	case (total == 15 && d == 10) || (total == 16 && d >= 9):
		if opts.surrender {
			return table.Surrender
		}
	}
	return table.Hit
}

func (b *Basic) soft(total, d int, opts options) table.Move {
	switch {
	case total >= 13 && total <= 17 && d >= 7:
		return table.Hit
	case total == 18 && d >= 9:
		return table.Hit
	case d == 2 && total >= 13 && total <= 17:
		return table.Hit
	case d == 3 && total >= 13 && total <= 16:
		return table.Hit
	case d == 4 && total >= 13 && total <= 14:
		return table.Hit
	case total >= 19 && total <= table.BlackjackTotal:
		return table.Stand
	case total == 18 && (d == 2 || d == 7 || d == 8):
		return table.Stand
	case total == 18:
		if opts.double {
			return table.DoubleThenStand
		}
		return table.Stand
	case opts.double:
		return table.DoubleThenStand
	}
	return table.Hit
}

func (b *Basic) pair(hand *table.PlayerHand, up deck.Card, opts options) table.Move {
	d := up.BaseValue()
	p := hand.First().BaseValue()
	switch {
	case p == 4:
		return table.Hit
	case (p == 2 || p == 3) && (d == 2 || d == 3 || d >= 8):
		return table.Hit
	case p == 6 && (d == 2 || d >= 7):
		return table.Hit
	case p == 5 && d >= 10:
		return table.Hit
	case p == 7 && d >= 8:
		return table.Hit
	case p == 10:
		return table.Stand
	case p == 9 && (d == 7 || d >= 10):
		return table.Stand
	case p == 5:
		if opts.double {
			return table.DoubleThenStand
		}
		return table.Hit
	}

	if opts.split {
		return table.Split
	}
	// out of hands: Aces stand, anything else plays as a hard total
	if hand.First().IsAce() {
		return table.Stand
	}
	return b.hard(hand.Total(), up, opts)
}
