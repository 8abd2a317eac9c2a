package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/history"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// stackedShoeFile writes a one-deck shoe starting with the given cards and
// padded with twos of clubs
func stackedShoeFile(t *testing.T, dir, cards string) string {
	t.Helper()

	tokens := strings.Fields(cards)
	for len(tokens) < 52 {
		tokens = append(tokens, "2C")
	}
	return writeFile(t, dir, "shoe.txt", strings.Join(tokens, " "))
}

func testGlobals(t *testing.T, out *bytes.Buffer) *Globals {
	return &Globals{Stdout: out, Stderr: io.Discard, Clock: quartz.NewMock(t)}
}

func TestDebugSession(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var out bytes.Buffer
	g := testGlobals(t, &out)
	g.Journal = filepath.Join(dir, "journal.jsonl")
	g.Summary = filepath.Join(dir, "summary.toml")

	cmd := DebugCmd{
		MinBet:      "10",
		MaxBet:      "100",
		Balance:     "500",
		ShoeFile:    stackedShoeFile(t, dir, "10H 5D 10S 8C 7C"),
		CommandFile: writeFile(t, dir, "cmds.txt", "b 10\nd\ns\n$\n"),
	}
	require.NoError(t, cmd.Run(g))

	assert.Equal(t, []string{
		"# b 10",
		"player is betting 10",
		"# d",
		"dealer's hand 10H X",
		"player's hand 10S 8C (18)",
		"# s",
		"player stands",
		"dealer's hand 10H 5D (15)",
		"dealer hits",
		"dealer's hand 10H 5D 7C (22)",
		"dealer busts",
		"Player wins and his current balance is 510",
		"",
		"# $",
		"Player's current balance is 510",
		"bye",
	}, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"))

	journal, err := os.ReadFile(g.Journal)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(journal), "\n"))

	summary, err := history.ReadSummary(g.Summary)
	require.NoError(t, err)
	assert.Equal(t, string(config.Debug), summary.Session.Mode)
	assert.Equal(t, 1, summary.Session.Decks)
	assert.Zero(t, summary.Session.Shuffles)
	assert.Equal(t, 1, summary.Hands.Wins)
	assert.Equal(t, 510.0, summary.Balance.Final)
}

func TestSimulateSession(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var out bytes.Buffer
	g := testGlobals(t, &out)
	g.Seed = 42
	g.Summary = filepath.Join(dir, "summary.toml")

	cmd := SimulateCmd{
		MinBet:   "10",
		MaxBet:   "100",
		Balance:  "5000",
		Decks:    "4",
		Shuffle:  "75",
		Shoes:    "2",
		Strategy: "HL-AF",
	}
	require.NoError(t, cmd.Run(g))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "BJ P/D \t"))
	assert.True(t, strings.HasPrefix(lines[4], "Balance\t"))

	summary, err := history.ReadSummary(g.Summary)
	require.NoError(t, err)
	assert.Equal(t, "HL-AF", summary.Session.Strategy)
	assert.Equal(t, int64(42), summary.Session.Seed)
	assert.Equal(t, 3, summary.Session.Shuffles)
	assert.Positive(t, summary.Hands.Player)
}

func TestStartupDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  func(g *Globals) error
		want string
	}{
		{
			name: "bet range",
			run: func(g *Globals) error {
				return (&InteractiveCmd{MinBet: "10", MaxBet: "50", Balance: "500", Decks: "6", Shuffle: "80"}).Run(g)
			},
			want: "Invalid bet args\n",
		},
		{
			name: "strategy",
			run: func(g *Globals) error {
				return (&SimulateCmd{MinBet: "10", MaxBet: "100", Balance: "500", Decks: "6", Shuffle: "80", Shoes: "1", Strategy: "nope"}).Run(g)
			},
			want: "Invalid betting strategy\n",
		},
		{
			name: "missing shoe file",
			run: func(g *Globals) error {
				return (&DebugCmd{MinBet: "10", MaxBet: "100", Balance: "500",
					ShoeFile: filepath.Join(t.TempDir(), "none.txt"), CommandFile: "cmds.txt"}).Run(g)
			},
			want: "Invalid shoe file: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, tt.run(testGlobals(t, &out)))
			assert.True(t, strings.HasPrefix(out.String(), tt.want), out.String())
		})
	}
}

func TestRulesFileErrorsAreReturned(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var out bytes.Buffer
	g := testGlobals(t, &out)
	g.Rules = writeFile(t, dir, "rules.hcl", "rules {")

	cmd := InteractiveCmd{MinBet: "10", MaxBet: "100", Balance: "500", Decks: "6", Shuffle: "80"}
	assert.Error(t, cmd.Run(g))
	assert.Empty(t, out.String())
}
