package history

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/statistics"
)

// Summary is the end-of-session record written as TOML
type Summary struct {
	Session SessionInfo  `toml:"session"`
	Hands   HandCounts   `toml:"hands"`
	Balance BalanceTotal `toml:"balance"`
}

// SessionInfo describes how the session was run
type SessionInfo struct {
	Mode     string    `toml:"mode"`
	Strategy string    `toml:"strategy,omitempty"`
	Seed     int64     `toml:"seed,omitempty"`
	Decks    int       `toml:"decks"`
	MinBet   int       `toml:"min_bet"`
	MaxBet   int       `toml:"max_bet"`
	Started  time.Time `toml:"started"`
	Finished time.Time `toml:"finished"`
	Shuffles int       `toml:"shuffles"`
}

// HandCounts are the per-hand tallies
type HandCounts struct {
	Player           int `toml:"player"`
	Dealer           int `toml:"dealer"`
	PlayerBlackjacks int `toml:"player_blackjacks"`
	DealerBlackjacks int `toml:"dealer_blackjacks"`
	Wins             int `toml:"wins"`
	Losses           int `toml:"losses"`
	Pushes           int `toml:"pushes"`
	Split            int `toml:"split"`
	Doubled          int `toml:"doubled"`
}

// BalanceTotal is where the money went. The net figures are per settled
// hand.
type BalanceTotal struct {
	Initial   float64 `toml:"initial"`
	Final     float64 `toml:"final"`
	Gain      float64 `toml:"gain"`
	MeanNet   float64 `toml:"mean_net"`
	MedianNet float64 `toml:"median_net"`
	P05Net    float64 `toml:"p05_net"`
	P95Net    float64 `toml:"p95_net"`
	StdDev    float64 `toml:"std_dev"`
	CI95Low   float64 `toml:"ci95_low"`
	CI95High  float64 `toml:"ci95_high"`
}

// NewSummary builds a summary from the session statistics. Session details
// other than the timings are left for the caller to fill in.
func NewSummary(stats *statistics.Statistics, balance float64, started, finished time.Time) Summary {
	low, high := stats.ConfidenceInterval95()
	return Summary{
		Session: SessionInfo{
			Started:  started,
			Finished: finished,
		},
		Hands: HandCounts{
			Player:           stats.PlayerHands,
			Dealer:           stats.DealerHands,
			PlayerBlackjacks: stats.PlayerBlackjacks,
			DealerBlackjacks: stats.DealerBlackjacks,
			Wins:             stats.Wins,
			Losses:           stats.Losses,
			Pushes:           stats.Pushes,
			Split:            stats.SplitHands,
			Doubled:          stats.DoubledHands,
		},
		Balance: BalanceTotal{
			Initial:   stats.InitialBalance,
			Final:     balance,
			Gain:      stats.Gain(balance),
			MeanNet:   stats.Mean(),
			MedianNet: stats.Median(),
			P05Net:    stats.Percentile(0.05),
			P95Net:    stats.Percentile(0.95),
			StdDev:    stats.StdDev(),
			CI95Low:   low,
			CI95High:  high,
		},
	}
}

// Encode writes the summary as TOML
func (s Summary) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc.Encode(s)
}

// WriteSummary replaces the file at path with the summary
func WriteSummary(path string, s Summary) error {
	if err := fileutil.WriteAtomic(path, 0o644, s.Encode); err != nil {
		return fmt.Errorf("writing session summary: %w", err)
	}
	return nil
}

// ReadSummary loads a summary written by WriteSummary
func ReadSummary(path string) (Summary, error) {
	var s Summary
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Summary{}, fmt.Errorf("reading session summary: %w", err)
	}
	return s, nil
}
