package display

import (
	"bytes"
	"context"
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
	"github.com/lox/blackjack/internal/table"
)

// transcript plays a scripted session and returns what the console printed
func transcript(t *testing.T, cards, commands string, echo bool) []string {
	t.Helper()

	parsed := deck.MustParseCards(cards)
	for len(parsed)%deck.CardsPerDeck != 0 {
		parsed = append(parsed, deck.NewCard(deck.Two, deck.Clubs))
	}
	shoe, err := deck.NewShoeFromCards(parsed, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	console := NewConsole(&out, WithPlainText())

	var opts []command.ScriptOption
	if echo {
		opts = append(opts, command.WithEcho(console.Echo))
	}
	script := command.NewScript(strings.Fields(commands), opts...)

	rules := game.DefaultRules(10, 100)
	rules.AutoShuffle = false
	engine := game.NewEngine(rules, shoe, 500, script, game.WithClock(quartz.NewMock(t)))
	engine.EventBus().Subscribe(console)

	require.NoError(t, engine.Run(context.Background()))
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestTranscriptDealerBusts(t *testing.T) {
	t.Parallel()

	got := transcript(t, "10H 5D 10S 8C 7C", "b 10 d s", false)
	assert.Equal(t, []string{
		"player is betting 10",
		"dealer's hand 10H X",
		"player's hand 10S 8C (18)",
		"player stands",
		"dealer's hand 10H 5D (15)",
		"dealer hits",
		"dealer's hand 10H 5D 7C (22)",
		"dealer busts",
		"Player wins and his current balance is 510",
		"",
		"bye",
	}, got)
}

func TestTranscriptSplitHands(t *testing.T) {
	t.Parallel()

	got := transcript(t, "10H 7D 8S 8D 3C KC 2H", "b 10 d p 2 s", false)
	assert.Equal(t, []string{
		"player is betting 10",
		"dealer's hand 10H X",
		"player's hand 8S 8D (16)",
		"player is splitting",
		"playing 1st hand...",
		"player's hand [1] 8S 3C (11)",
		"player's hand [1] 8S 3C KC (21)",
		"playing 2nd hand...",
		"player's hand [2] 8D 2H (10)",
		"player stands [2]",
		"dealer's hand 10H 7D (17)",
		"dealer stands",
		"Player wins [1] and his current balance is 510",
		"Player loses [2] and his current balance is 510",
		"",
		"bye",
	}, got)
}

func TestTranscriptEchoAndIllegal(t *testing.T) {
	t.Parallel()

	got := transcript(t, "10H 7D 10S 6C 4D", "d b 5 b 10 h $", true)
	assert.Equal(t, []string{
		"# d",
		"d: illegal command",
		"# b 5",
		"b 5: illegal command",
		"# b 10",
		"player is betting 10",
		"# h",
		"h: illegal command",
		"# $",
		"Player's current balance is 490",
		"bye",
	}, got)
}

func TestFormatAdvice(t *testing.T) {
	t.Parallel()

	now := time.Now()
	bet := Format(game.NewBetAdviceEvent(now, []game.BetAdvice{
		{Strategy: "Ace5", Bet: 10},
		{Strategy: "Standard Bet", Bet: 20},
	}))
	require.Len(t, bet, 2)
	assert.Equal(t, "Ace5\t\tbet 10", bet[0].Text)
	assert.Equal(t, "Standard Bet\tbet 20", bet[1].Text)

	play := Format(game.NewPlayAdviceEvent(now, 0, []game.PlayAdvice{
		{Strategy: "Basic", Move: table.Surrender},
		{Strategy: "HiLo", Move: table.Hit},
	}))
	require.Len(t, play, 2)
	assert.Equal(t, "Basic\t\tsurrender", play[0].Text)
	assert.Equal(t, "HiLo\t\thit", play[1].Text)
}

func TestFormatRoundMessages(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tests := []struct {
		name  string
		event game.GameEvent
		want  Line
	}{
		{"shuffle", game.NewShuffleEvent(now, 2), Line{Text: "shuffling the shoe...", Tone: Muted}},
		{"blackjack", game.NewBlackjackEvent(now, false), Line{Text: "blackjack!!", Tone: Alert}},
		{"insurance", game.NewInsurancePaidEvent(now, 20), Line{Text: "Player wins insurance", Tone: Good}},
		{"bust", game.NewPlayerBustEvent(now, 2, 3), Line{Text: "player busts [3]", Tone: Bad}},
		{"single bust", game.NewPlayerBustEvent(now, 0, 1), Line{Text: "player busts", Tone: Bad}},
		{"push", game.NewHandSettledEvent(now, "r", 0, 1, table.Push, 10, 10, 500.5),
			Line{Text: "Player pushes and his current balance is 500.5"}},
		{"surrender", game.NewPlayerActionEvent(now, 1, 2, table.Surrender, nil),
			Line{Text: "player is surrendering [2]"}},
		{"insure", game.NewPlayerActionEvent(now, 0, 1, table.Insure, nil),
			Line{Text: "player is insuring"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Format(tt.event)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.want, lines[0])
		})
	}
}

func TestFormatNumbers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "510", FormatAmount(510))
	assert.Equal(t, "497.5", FormatAmount(497.5))
	assert.Equal(t, "0.33", FormatRatio(1.0/3))
	assert.Equal(t, "1.02", FormatRatio(1.02))
	assert.Equal(t, "0", FormatRatio(0))
	assert.Equal(t, "4th", ordinal(4))
}

func TestReport(t *testing.T) {
	t.Parallel()

	stats := statistics.New(500)
	stats.PlayerHands = 4
	stats.DealerHands = 3
	stats.Add(statistics.HandResult{Outcome: 1, Net: 15, Blackjack: true})
	stats.Add(statistics.HandResult{Outcome: 1, Net: 10})
	stats.Add(statistics.HandResult{Outcome: -1, Net: -10})
	stats.Add(statistics.HandResult{Outcome: 0})

	assert.Equal(t, []string{
		"BJ P/D \t0.25 / 0",
		"Win  \t0.5",
		"Lose \t0.25",
		"Push \t0.25",
		"Balance\t515 / 1.03",
	}, Report(stats, 515))
}

func TestSummaryPrintsOnlyAtQuit(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := NewSummary(&out)
	now := time.Now()

	s.OnEvent(game.NewShuffleEvent(now, 1))
	s.OnEvent(game.NewBetPlacedEvent(now, 10, 490))
	assert.Empty(t, out.String())

	s.OnEvent(game.NewQuitEvent(now, statistics.New(500), 500))
	assert.Equal(t, "BJ P/D \t0 / 0\nWin  \t0\nLose \t0\nPush \t0\nBalance\t500 / 1\n", out.String())
}
