package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "ace of spades", input: "AS", want: Card{Rank: Ace, Suit: Spades}},
		{name: "ten of hearts", input: "10H", want: Card{Rank: Ten, Suit: Hearts}},
		{name: "pip card", input: "7C", want: Card{Rank: Seven, Suit: Clubs}},
		{name: "face card", input: "QD", want: Card{Rank: Queen, Suit: Diamonds}},
		{name: "case insensitive", input: "kh", want: Card{Rank: King, Suit: Hearts}},
		{name: "bad suit", input: "AX", wantErr: true},
		{name: "bad rank", input: "1S", wantErr: true},
		{name: "T is not a rank", input: "TS", wantErr: true},
		{name: "too long", input: "10HS", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("AS 10H\n5D  KC")
	require.NoError(t, err)
	require.Len(t, cards, 4)
	assert.Equal(t, "AS", cards[0].Code())
	assert.Equal(t, "KC", cards[3].Code())

	_, err = ParseCards("AS ZZ")
	assert.ErrorIs(t, err, ErrInvalidCard)

	assert.Panics(t, func() { MustParseCards("nope") })
}

func TestCardValues(t *testing.T) {
	t.Parallel()

	ace := NewCard(Ace, Spades)
	assert.Equal(t, 11, ace.Value())
	assert.True(t, ace.IsSoft())

	ace.Harden()
	assert.Equal(t, 1, ace.Value())
	assert.Equal(t, 11, ace.BaseValue())
	assert.False(t, ace.IsSoft())
	assert.True(t, ace.Fresh().IsSoft(), "a fresh copy is soft again")

	assert.Equal(t, 10, NewCard(Jack, Hearts).Value())
	assert.Equal(t, 10, NewCard(Ten, Hearts).Value())
	assert.Equal(t, 7, NewCard(Seven, Clubs).Value())

	king := NewCard(King, Clubs)
	king.Harden()
	assert.Equal(t, 10, king.Value(), "only aces can be hardened")
}

func TestSameValue(t *testing.T) {
	t.Parallel()

	assert.True(t, NewCard(Ace, Spades).SameValue(NewCard(Ace, Hearts)))
	assert.True(t, NewCard(Jack, Spades).SameValue(NewCard(King, Hearts)))
	assert.True(t, NewCard(Ten, Spades).SameValue(NewCard(Queen, Hearts)))
	assert.True(t, NewCard(Eight, Spades).SameValue(NewCard(Eight, Clubs)))
	assert.False(t, NewCard(Nine, Spades).SameValue(NewCard(Ten, Clubs)))
	assert.False(t, NewCard(Ace, Spades).SameValue(NewCard(King, Clubs)))
}

func TestCardString(t *testing.T) {
	t.Parallel()

	c := NewCard(Ten, Hearts)
	assert.Equal(t, "X", c.String())
	c.FaceUp = true
	assert.Equal(t, "10H", c.String())
	assert.Equal(t, "♥", c.Suit.Symbol())
	assert.True(t, c.Suit.IsRed())
}
