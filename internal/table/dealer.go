package table

import "github.com/lox/blackjack/internal/deck"

// DefaultDealerStand is the total at which the dealer stops drawing
const DefaultDealerStand = 17

// Dealer owns the shoe and a single hand with a hole card.
type Dealer struct {
	shoe *deck.Shoe
	hand *Hand
}

// NewDealer creates a dealer dealing from shoe
func NewDealer(shoe *deck.Shoe) *Dealer {
	return &Dealer{shoe: shoe, hand: NewDealerHand()}
}

// Deal takes the next card from the shoe
func (d *Dealer) Deal() deck.Card {
	return d.shoe.Deal()
}

// AddCard puts c in the dealer's own hand
func (d *Dealer) AddCard(c deck.Card) {
	d.hand.AddCard(c)
}

// RevealHole turns the hole card up and returns it
func (d *Dealer) RevealHole() (deck.Card, bool) {
	return d.hand.RevealHole()
}

// UpCard returns the dealer's face-up first card
func (d *Dealer) UpCard() deck.Card {
	return d.hand.First()
}

// Shuffle shuffles the shoe
func (d *Dealer) Shuffle() {
	d.shoe.Shuffle()
}

// ResetHand clears the dealer's hand for the next round
func (d *Dealer) ResetHand() {
	d.hand.Reset()
}

// Hand returns the dealer's hand
func (d *Dealer) Hand() *Hand {
	return d.hand
}

// Shoe returns the shoe the dealer deals from
func (d *Dealer) Shoe() *deck.Shoe {
	return d.shoe
}
