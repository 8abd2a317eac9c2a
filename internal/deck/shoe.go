package deck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
)

// CardsPerDeck is the size of one standard deck
const CardsPerDeck = 52

// ErrShoeSize is returned when a shoe file does not hold whole decks.
var ErrShoeSize = errors.New("shoe must contain a positive multiple of 52 cards")

// Shoe is a fixed ring of cards. Dealing hands out the card at the front and
// moves the front on by one, so a dealt card goes to the back of the ring
// rather than leaving the shoe. Without a shuffle a card can come round again
// before the rest have been seen.
type Shoe struct {
	cards []Card
	front int
	dealt int
	decks int
	rng   *rand.Rand
}

// NewShoe creates an unshuffled shoe of n standard decks. Within each deck the
// order is suit by suit (S, H, C, D), Ace to King.
func NewShoe(decks int, rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards: make([]Card, 0, decks*CardsPerDeck),
		decks: decks,
		rng:   rng,
	}
	for d := 0; d < decks; d++ {
		for suit := Spades; suit <= Diamonds; suit++ {
			for rank := Ace; rank <= King; rank++ {
				s.cards = append(s.cards, NewCard(rank, suit))
			}
		}
	}
	return s
}

// NewShoeFromCards builds a shoe that deals the given cards in order. The deck
// count is inferred from the card count.
func NewShoeFromCards(cards []Card, rng *rand.Rand) (*Shoe, error) {
	if len(cards) == 0 || len(cards)%CardsPerDeck != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrShoeSize, len(cards))
	}
	s := &Shoe{
		cards: make([]Card, len(cards)),
		decks: len(cards) / CardsPerDeck,
		rng:   rng,
	}
	for i, c := range cards {
		s.cards[i] = c.Fresh()
	}
	return s, nil
}

// ReadShoe parses whitespace-separated "<rank><suit>" tokens from r.
func ReadShoe(r io.Reader, rng *rand.Rand) (*Shoe, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var cards []Card
	for scanner.Scan() {
		c, err := ParseCard(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", len(cards)+1, err)
		}
		cards = append(cards, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shoe: %w", err)
	}
	return NewShoeFromCards(cards, rng)
}

// LoadShoe reads a shoe file from disk.
func LoadShoe(path string, rng *rand.Rand) (*Shoe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shoe file: %w", err)
	}
	defer f.Close()

	s, err := ReadShoe(f, rng)
	if err != nil {
		return nil, fmt.Errorf("invalid shoe file %s: %w", path, err)
	}
	return s, nil
}

// Shuffle randomly permutes every card in the shoe, turns them all face down
// and resets the dealt counter.
func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	for i := range s.cards {
		s.cards[i] = s.cards[i].Fresh()
	}
	s.front = 0
	s.dealt = 0
}

// Deal returns the card at the front of the shoe, face down, and rotates it to
// the back.
func (s *Shoe) Deal() Card {
	c := s.cards[s.front].Fresh()
	s.front = (s.front + 1) % len(s.cards)
	s.dealt++
	return c
}

// Dealt returns the number of cards dealt since the last shuffle
func (s *Shoe) Dealt() int {
	return s.dealt
}

// Decks returns the number of decks in the shoe
func (s *Shoe) Decks() int {
	return s.decks
}

// Size returns the total number of cards in the shoe
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Cards returns the shoe contents in dealing order, starting from the front.
func (s *Shoe) Cards() []Card {
	out := make([]Card, len(s.cards))
	for i := range s.cards {
		out[i] = s.cards[(s.front+i)%len(s.cards)]
	}
	return out
}
