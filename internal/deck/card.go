package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card token cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// String returns the single-letter form used in shoe files (S, H, C, D)
func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit glyph for display
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the rank symbol (A, 2-10, J, Q, K)
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Ten {
			return fmt.Sprint(int(r))
		}
		return "?"
	}
}

// Card is a playing card as held in a hand. Rank and Suit never change after
// creation; FaceUp and the ace softness are per-deal state.
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
	hard   bool // ace already downgraded to 1
}

// NewCard creates a face-down card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsSoft reports whether the card is an Ace still counted as 11
func (c Card) IsSoft() bool {
	return c.Rank == Ace && !c.hard
}

// Harden downgrades a soft Ace to 1. It is a no-op on any other card.
func (c *Card) Harden() {
	if c.Rank == Ace {
		c.hard = true
	}
}

// Fresh returns the card as it comes out of the shoe: face down, aces soft.
func (c Card) Fresh() Card {
	return Card{Rank: c.Rank, Suit: c.Suit}
}

// Value returns the current numeric value: face cards 10, a soft Ace 11, a
// downgraded Ace 1, everything else its pip value.
func (c Card) Value() int {
	if c.Rank == Ace {
		if c.hard {
			return 1
		}
		return 11
	}
	return c.BaseValue()
}

// BaseValue returns the value used by strategy tables and counting systems,
// where an Ace is always 11 regardless of how the hand is counting it.
func (c Card) BaseValue() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Ten:
		return 10
	default:
		return int(c.Rank)
	}
}

// SameValue reports whether two cards form a pair: two Aces, or two cards of
// equal numeric value (a Jack pairs with a King).
func (c Card) SameValue(other Card) bool {
	if c.IsAce() && other.IsAce() {
		return true
	}
	return c.BaseValue() == other.BaseValue()
}

// String returns the card in shoe-file form (e.g. "10H", "AS"), or "X" when
// the card is face down.
func (c Card) String() string {
	if !c.FaceUp {
		return "X"
	}
	return c.Code()
}

// Code returns the shoe-file form regardless of visibility
func (c Card) Code() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a single "<rank><suit>" token such as "10H", "AS" or "qd".
func ParseCard(token string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(token))
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, token)
	}

	var suit Suit
	switch s[len(s)-1] {
	case 'S':
		suit = Spades
	case 'H':
		suit = Hearts
	case 'C':
		suit = Clubs
	case 'D':
		suit = Diamonds
	default:
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidCard, token)
	}

	var rank Rank
	switch r := s[:len(s)-1]; r {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "10":
		rank = Ten
	default:
		if len(r) != 1 || r[0] < '2' || r[0] > '9' {
			return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCard, token)
		}
		rank = Rank(r[0] - '0')
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses whitespace-separated card tokens.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
