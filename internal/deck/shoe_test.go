package deck

import (
	"strings"
	"testing"

	rand "math/rand/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func countCodes(cards []Card) map[string]int {
	counts := make(map[string]int)
	for _, c := range cards {
		counts[c.Code()]++
	}
	return counts
}

func TestNewShoe(t *testing.T) {
	t.Parallel()

	s := NewShoe(2, testRNG())
	assert.Equal(t, 104, s.Size())
	assert.Equal(t, 2, s.Decks())
	assert.Equal(t, 0, s.Dealt())

	cards := s.Cards()
	assert.Equal(t, "AS", cards[0].Code())
	assert.Equal(t, "KS", cards[12].Code())
	assert.Equal(t, "AH", cards[13].Code())
	assert.Equal(t, "KD", cards[51].Code())
	assert.Equal(t, "AS", cards[52].Code())

	for code, n := range countCodes(cards) {
		assert.Equal(t, 2, n, "card %s", code)
	}
}

func TestShoeDealRotates(t *testing.T) {
	t.Parallel()

	s := NewShoe(1, testRNG())
	first := s.Deal()
	assert.Equal(t, "AS", first.Code())
	assert.False(t, first.FaceUp, "dealt cards start face down")
	assert.Equal(t, 1, s.Dealt())

	// The dealt card is now at the back of the ring.
	cards := s.Cards()
	assert.Equal(t, "2S", cards[0].Code())
	assert.Equal(t, "AS", cards[51].Code())

	for i := 0; i < 51; i++ {
		s.Deal()
	}
	assert.Equal(t, "AS", s.Deal().Code(), "after a full lap the first card comes round again")
	assert.Equal(t, 53, s.Dealt())
}

func TestShuffleIsPermutation(t *testing.T) {
	t.Parallel()

	s := NewShoe(4, testRNG())
	before := countCodes(s.Cards())
	for i := 0; i < 30; i++ {
		s.Deal()
	}

	s.Shuffle()

	assert.Equal(t, 0, s.Dealt())
	after := s.Cards()
	assert.Equal(t, before, countCodes(after))
	for _, c := range after {
		assert.False(t, c.FaceUp)
	}
	assert.NotEqual(t, NewShoe(4, testRNG()).Cards(), after, "order should change")
}

func TestReadShoe(t *testing.T) {
	t.Parallel()

	t.Run("one deck", func(t *testing.T) {
		codes := make([]string, 0, 52)
		for _, c := range NewShoe(1, testRNG()).Cards() {
			codes = append(codes, c.Code())
		}
		s, err := ReadShoe(strings.NewReader(strings.Join(codes, " ")), testRNG())
		require.NoError(t, err)
		assert.Equal(t, 1, s.Decks())
		assert.Equal(t, "AS", s.Deal().Code())
	})

	t.Run("partial deck", func(t *testing.T) {
		_, err := ReadShoe(strings.NewReader("AS 2S 3S"), testRNG())
		assert.ErrorIs(t, err, ErrShoeSize)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ReadShoe(strings.NewReader(""), testRNG())
		assert.ErrorIs(t, err, ErrShoeSize)
	})

	t.Run("bad token", func(t *testing.T) {
		_, err := ReadShoe(strings.NewReader("AS 2S XX"), testRNG())
		assert.ErrorIs(t, err, ErrInvalidCard)
	})
}

func TestLoadShoeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadShoe("/nonexistent/shoe.txt", testRNG())
	assert.Error(t, err)
}
