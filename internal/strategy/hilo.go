package strategy

import (
	"math"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/table"
)

// HiLo keeps a Hi-Lo running count over the shoe and applies the count-based
// deviations (the Illustrious 18 and the Fab 4 surrenders), falling back to
// Basic everywhere else.
type HiLo struct {
	limits  Limits
	decks   int
	running int
	seen    int
	basic   *Basic
}

// NewHiLo creates a HiLo strategy for a shoe of the given number of decks
func NewHiLo(limits Limits, decks int) *HiLo {
	return &HiLo{limits: limits, decks: decks, basic: NewBasic(limits)}
}

func (h *HiLo) Name() string { return "HiLo" }

// UpdateCount adds one for 2 through 6 and takes one away for tens and Aces
func (h *HiLo) UpdateCount(c deck.Card) {
	h.seen++
	switch v := c.BaseValue(); {
	case v >= 2 && v <= 6:
		h.running++
	case v >= 10:
		h.running--
	}
}

func (h *HiLo) ResetCount() {
	h.running = 0
	h.seen = 0
}

// RunningCount returns the raw Hi-Lo count since the last shuffle
func (h *HiLo) RunningCount() int { return h.running }

// TrueCount is the running count per remaining deck, both rounded half up.
// Less than one deck left counts as one.
func (h *HiLo) TrueCount() int {
	decksLeft := int(roundHalfUp(float64(deck.CardsPerDeck*h.decks-h.seen) / deck.CardsPerDeck))
	if decksLeft <= 0 {
		decksLeft = 1
	}
	return int(roundHalfUp(float64(h.running) / float64(decksLeft)))
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// NextPlay returns a count deviation when one applies, otherwise basic strategy
func (h *HiLo) NextPlay(nHands int, hand *table.PlayerHand, dealer *table.Hand, bet int) table.Move {
	opts := h.limits.options(nHands, hand, bet)
	up := dealer.First()
	tc := h.TrueCount()

	if up.IsAce() && opts.insure && tc >= 3 {
		return table.Insure
	}
	if m, ok := h.deviation(hand, up.BaseValue(), tc, opts); ok {
		return m
	}
	return h.basic.NextPlay(nHands, hand, dealer, bet)
}

func (h *HiLo) deviation(hand *table.PlayerHand, d, tc int, opts options) (table.Move, bool) {
	total := hand.Total()

	if hand.IsPair() && total == 20 {
		var threshold int
		switch d {
		case 5:
			threshold = 5
		case 6:
			threshold = 4
		default:
			return 0, false
		}
		if opts.split && tc >= threshold {
			return table.Split, true
		}
		return table.Stand, true
	}

	switch total {
	case 9:
		switch d {
		case 2:
			return doubleAt(tc, 1, opts), true
		case 7:
			return doubleAt(tc, 3, opts), true
		}
		return 0, false
	case 10:
		if d >= 10 {
			return doubleAt(tc, 4, opts), true
		}
		return 0, false
	case 11:
		if d == 11 {
			return doubleAt(tc, 1, opts), true
		}
		return 0, false
	}

	// stiff totals only deviate for hard, unpaired hands
	if hand.IsPair() || !isHard(hand) {
		return 0, false
	}

	switch total {
	case 12:
		thresholds := map[int]int{2: 3, 3: 2, 4: 0, 5: -2, 6: -1}
		if t, ok := thresholds[d]; ok {
			return standAt(tc, t), true
		}
	case 13:
		switch d {
		case 2:
			return standAt(tc, -1), true
		case 3:
			return standAt(tc, -2), true
		}
	case 14:
		if d == 10 && tc >= 3 && opts.surrender {
			return table.Surrender, true
		}
	case 15:
		switch d {
		case 9:
			if tc >= 2 && opts.surrender {
				return table.Surrender, true
			}
		case 10:
			switch {
			case tc >= 4:
				return table.Stand, true
			case tc > 0 && opts.surrender:
				return table.Surrender, true
			default:
				return table.Hit, true
			}
		case 11:
			if tc >= 1 && opts.surrender {
				return table.Surrender, true
			}
		}
	case 16:
		switch d {
		case 9:
			return standAt(tc, 5), true
		case 10:
			return standAt(tc, 0), true
		}
	}
	return 0, false
}

func doubleAt(tc, threshold int, opts options) table.Move {
	if tc >= threshold && opts.double {
		return table.DoubleThenStand
	}
	return table.Hit
}

func standAt(tc, threshold int) table.Move {
	if tc >= threshold {
		return table.Stand
	}
	return table.Hit
}
