package history

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/command"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/statistics"
)

func playScripted(t *testing.T, subscriber game.EventSubscriber, cards, commands string) *game.Engine {
	t.Helper()

	parsed := deck.MustParseCards(cards)
	for len(parsed)%deck.CardsPerDeck != 0 {
		parsed = append(parsed, deck.NewCard(deck.Two, deck.Clubs))
	}
	shoe, err := deck.NewShoeFromCards(parsed, nil)
	require.NoError(t, err)

	rules := game.DefaultRules(10, 100)
	rules.AutoShuffle = false
	engine := game.NewEngine(rules, shoe, 500, command.NewScript(strings.Fields(commands)),
		game.WithClock(quartz.NewMock(t)))
	engine.EventBus().Subscribe(subscriber)

	require.NoError(t, engine.Run(context.Background()))
	return engine
}

func readJournal(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestJournalRecordsRounds(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	playScripted(t, NewJournal(&buf), "10H 7D 8S 8D 3C KC 2H", "b 10 d p 2 s")

	entries := readJournal(t, &buf)
	require.Len(t, entries, 4)

	var kinds []string
	for _, e := range entries {
		kinds = append(kinds, e["event"].(string))
		assert.Contains(t, e, "time")
	}
	assert.Equal(t, []string{"hand_settled", "hand_settled", "round_end", "quit"}, kinds)

	first := entries[0]
	assert.Equal(t, "wins", first["outcome"])
	assert.Equal(t, float64(1), first["hand"])
	assert.Equal(t, float64(20), first["stake"])
	assert.Equal(t, float64(40), first["payout"])
	assert.Equal(t, entries[1]["round"], first["round"])
	assert.NotEmpty(t, first["round"])

	round := entries[2]
	assert.Equal(t, "10H 7D", round["dealer"])
	assert.Equal(t, float64(17), round["dealer_total"])
	assert.Equal(t, []any{"8S 3C KC", "8D 2H"}, round["player"])
	assert.Equal(t, float64(510), round["balance"])

	quit := entries[3]
	assert.Equal(t, float64(2), quit["player_hands"])
	assert.Equal(t, float64(1), quit["wins"])
	assert.Equal(t, float64(1), quit["losses"])
}

func TestJournalRecordsShuffles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	journal := NewJournal(&buf)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	journal.OnEvent(game.NewShuffleEvent(at, 4))
	journal.OnEvent(game.NewBalanceEvent(at, 100))

	entries := readJournal(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shuffle", entries[0]["event"])
	assert.Equal(t, float64(4), entries[0]["shuffles"])
	assert.Equal(t, "2026-03-01T12:00:00Z", entries[0]["time"])
}

func TestSummaryRoundTrip(t *testing.T) {
	t.Parallel()

	stats := statistics.New(500)
	stats.PlayerHands = 3
	stats.DealerHands = 2
	stats.SplitHands = 2
	stats.Add(statistics.HandResult{Outcome: 1, Net: 20, Split: true})
	stats.Add(statistics.HandResult{Outcome: -1, Net: -10, Split: true})
	stats.Add(statistics.HandResult{Outcome: 0})

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	finished := started.Add(90 * time.Second)

	summary := NewSummary(stats, 510, started, finished)
	summary.Session.Mode = "simulate"
	summary.Session.Strategy = "HL-AF"
	summary.Session.Seed = 42
	summary.Session.Decks = 6

	path := filepath.Join(t.TempDir(), "summary.toml")
	require.NoError(t, WriteSummary(path, summary))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[session]")
	assert.Contains(t, string(raw), "[balance]")
	assert.Contains(t, string(raw), `strategy = "HL-AF"`)

	got, err := ReadSummary(path)
	require.NoError(t, err)

	assert.True(t, started.Equal(got.Session.Started))
	assert.True(t, finished.Equal(got.Session.Finished))
	got.Session.Started, got.Session.Finished = summary.Session.Started, summary.Session.Finished
	assert.Equal(t, summary, got)

	assert.Equal(t, 3, got.Hands.Player)
	assert.Equal(t, 1.02, got.Balance.Gain)
	assert.Equal(t, 2, got.Hands.Split)
	assert.Equal(t, 0.0, got.Balance.MedianNet)
	assert.Less(t, got.Balance.P05Net, got.Balance.P95Net)
	assert.Less(t, got.Balance.CI95Low, got.Balance.MeanNet)
	assert.Greater(t, got.Balance.CI95High, got.Balance.MeanNet)
}

func TestReadSummaryMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadSummary(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
