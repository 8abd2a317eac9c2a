// Package display turns engine events into the text a player reads.
package display

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/table"
)

// Tone picks the style a line is rendered with
type Tone int

const (
	Plain Tone = iota
	Muted
	Good
	Bad
	Alert
)

// Line is one line of output
type Line struct {
	Text string
	Tone Tone
}

// FormatAmount renders a balance or payout with no trailing zeros
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRatio renders a rate with at most two decimals
func FormatRatio(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return strconv.Itoa(n) + "th"
	}
}

// handIndex is the " [n]" suffix used once the player holds several hands
func handIndex(i, numHands int) string {
	if numHands <= 1 {
		return ""
	}
	return fmt.Sprintf(" [%d]", i+1)
}

func playerHand(i, numHands int, h *table.PlayerHand) string {
	if numHands <= 1 {
		return "player's hand " + h.String()
	}
	return fmt.Sprintf("player's hand [%d] %s", i+1, h.String())
}

func dealerHand(h *table.Hand) string {
	return "dealer's hand " + h.String()
}

// Report renders the statistics report
func Report(stats *statistics.Statistics, balance float64) []string {
	return []string{
		fmt.Sprintf("BJ P/D \t%s / %s", FormatRatio(stats.PlayerBlackjackRate()), FormatRatio(stats.DealerBlackjackRate())),
		"Win  \t" + FormatRatio(stats.WinRate()),
		"Lose \t" + FormatRatio(stats.LossRate()),
		"Push \t" + FormatRatio(stats.PushRate()),
		fmt.Sprintf("Balance\t%s / %s", FormatAmount(balance), FormatRatio(stats.Gain(balance))),
	}
}

func adviceLabel(name string) string {
	if len(name) < 8 {
		return name + "\t\t"
	}
	return name + "\t"
}

func plain(texts ...string) []Line {
	lines := make([]Line, len(texts))
	for i, t := range texts {
		lines[i] = Line{Text: t}
	}
	return lines
}

// Format returns the lines an event prints. Events with nothing to say
// return nil.
func Format(event game.GameEvent) []Line {
	switch e := event.(type) {
	case game.ShuffleEvent:
		return []Line{{Text: "shuffling the shoe...", Tone: Muted}}

	case game.BetPlacedEvent:
		return plain(fmt.Sprintf("player is betting %d", e.Amount))

	case game.IllegalCommandEvent:
		return []Line{{Text: e.Command + ": illegal command", Tone: Bad}}

	case game.BalanceEvent:
		return plain("Player's current balance is " + FormatAmount(e.Balance))

	case game.StatsEvent:
		return plain(Report(e.Stats, e.Balance)...)

	case game.BetAdviceEvent:
		lines := make([]Line, 0, len(e.Advice))
		for _, a := range e.Advice {
			lines = append(lines, Line{Text: fmt.Sprintf("%sbet %d", adviceLabel(a.Strategy), a.Bet), Tone: Muted})
		}
		return lines

	case game.PlayAdviceEvent:
		lines := make([]Line, 0, len(e.Advice))
		for _, a := range e.Advice {
			lines = append(lines, Line{Text: adviceLabel(a.Strategy) + a.Move.String(), Tone: Muted})
		}
		return lines

	case game.HandsDealtEvent:
		return plain(dealerHand(e.Dealer), playerHand(0, 1, e.Player))

	case game.PlayingHandEvent:
		return plain(
			fmt.Sprintf("playing %s hand...", ordinal(e.Index+1)),
			playerHand(e.Index, 2, e.Hand),
		)

	case game.PlayerActionEvent:
		return formatAction(e)

	case game.PlayerBustEvent:
		return []Line{{Text: "player busts" + handIndex(e.Index, e.NumHands), Tone: Bad}}

	case game.DealerActionEvent:
		return plain(dealerHand(e.Hand), "dealer "+e.Action.String())

	case game.BlackjackEvent:
		return []Line{{Text: "blackjack!!", Tone: Alert}}

	case game.InsurancePaidEvent:
		return []Line{{Text: "Player wins insurance", Tone: Good}}

	case game.HandSettledEvent:
		tone := Plain
		switch e.Outcome {
		case table.Win:
			tone = Good
		case table.Lose:
			tone = Bad
		}
		text := fmt.Sprintf("Player %s%s and his current balance is %s",
			e.Outcome, handIndex(e.Index, e.NumHands), FormatAmount(e.Balance))
		return []Line{{Text: text, Tone: tone}}

	case game.RoundEndEvent:
		return plain("")

	case game.QuitEvent:
		return plain("bye")
	}
	return nil
}

func formatAction(e game.PlayerActionEvent) []Line {
	idx := handIndex(e.Index, e.NumHands)
	switch e.Move {
	case table.Hit:
		return plain("player hits", playerHand(e.Index, e.NumHands, e.Hand))
	case table.DoubleThenStand:
		return plain(playerHand(e.Index, e.NumHands, e.Hand))
	case table.Stand:
		return plain("player stands" + idx)
	case table.Surrender:
		return plain("player is surrendering" + idx)
	case table.Split:
		return plain("player is splitting")
	case table.Insure:
		return plain("player is insuring")
	}
	return nil
}
