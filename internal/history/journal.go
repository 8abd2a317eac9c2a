// Package history records a session for later analysis: a JSON-lines round
// journal written while playing and a TOML summary written at the end.
package history

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Journal writes one JSON object per shuffle, settled hand, round and quit.
// Each line carries the time of the event, not the time it was written.
type Journal struct {
	logger zerolog.Logger
}

// NewJournal creates a journal writing to w
func NewJournal(w io.Writer) *Journal {
	return &Journal{logger: zerolog.New(w)}
}

func (j *Journal) entry(event game.GameEvent) *zerolog.Event {
	return j.logger.Log().
		Str(zerolog.TimestampFieldName, event.Timestamp().Format(time.RFC3339Nano)).
		Str("event", event.EventType().String())
}

func (j *Journal) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.ShuffleEvent:
		j.entry(e).Int("shuffles", e.Shuffles).Send()

	case game.HandSettledEvent:
		j.entry(e).
			Str("round", e.RoundID).
			Int("hand", e.Index+1).
			Str("outcome", e.Outcome.String()).
			Int("stake", e.Stake).
			Float64("payout", e.Payout).
			Float64("balance", e.Balance).
			Send()

	case game.RoundEndEvent:
		hands := make([]string, 0, len(e.Hands))
		for _, h := range e.Hands {
			hands = append(hands, codes(h.Cards()))
		}
		j.entry(e).
			Str("round", e.RoundID).
			Str("dealer", codes(e.Dealer.Cards())).
			Int("dealer_total", e.Dealer.Total()).
			Strs("player", hands).
			Float64("balance", e.Balance).
			Send()

	case game.QuitEvent:
		j.entry(e).
			Int("player_hands", e.Stats.PlayerHands).
			Int("wins", e.Stats.Wins).
			Int("losses", e.Stats.Losses).
			Int("pushes", e.Stats.Pushes).
			Float64("balance", e.Balance).
			Send()
	}
}

// codes renders cards by their shoe-file codes, hidden ones included
func codes(cards []deck.Card) string {
	out := make([]byte, 0, 4*len(cards))
	for i, c := range cards {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, c.Code()...)
	}
	return string(out)
}
