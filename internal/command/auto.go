package command

import (
	"context"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/strategy"
	"github.com/lox/blackjack/internal/table"
)

// Auto plays on its own from one betting and one playing strategy. It bets
// what the betting strategy advises, deals, then follows the playing
// strategy, and quits once the requested number of shoes has been played.
//
// Auto has to be subscribed to the engine's event bus so it can count
// shuffles, and the engine must be given the same strategy instances so
// their counts see every card.
type Auto struct {
	betting strategy.Betting
	playing strategy.Playing
	shoes   int

	shuffles  int
	betPlaced bool
	rejected  bool
}

// NewAuto creates a driver that plays shoes full shoes
func NewAuto(betting strategy.Betting, playing strategy.Playing, shoes int) *Auto {
	return &Auto{betting: betting, playing: playing, shoes: shoes}
}

// NewAutoFromPreset builds the preset's strategies and a driver that uses them
func NewAutoFromPreset(p strategy.Preset, limits strategy.Limits, decks, shoes int) *Auto {
	return NewAuto(p.Betting(limits), p.Playing(limits, decks), shoes)
}

// Betting returns the betting strategy the driver follows
func (a *Auto) Betting() strategy.Betting { return a.betting }

// Playing returns the playing strategy the driver follows
func (a *Auto) Playing() strategy.Playing { return a.playing }

// Shuffles returns how many shuffles the driver has seen, the opening one
// included
func (a *Auto) Shuffles() int { return a.shuffles }

// OnEvent counts shuffles and notices rejected commands
func (a *Auto) OnEvent(event game.GameEvent) {
	switch event.(type) {
	case game.ShuffleEvent:
		a.shuffles++
	case game.IllegalCommandEvent:
		a.rejected = true
	}
}

// done reports whether every requested shoe has been played out. The
// opening shuffle starts shoe one, so shuffle s+1 ends shoe s.
func (a *Auto) done() bool {
	return a.shuffles > a.shoes
}

func (a *Auto) NextBetCommand(ctx context.Context) (game.Command, error) {
	if err := ctx.Err(); err != nil {
		return game.Command{}, err
	}
	if a.done() {
		return game.NewCommand(game.CmdQuit), nil
	}

	if a.betPlaced && !a.rejected {
		a.betPlaced = false
		return game.NewCommand(game.CmdDeal), nil
	}
	a.rejected = false
	a.betPlaced = true
	return game.BetCommand(a.betting.NextBet()), nil
}

// NextPlayCommand asks the playing strategy for a move. If the engine turned
// the last move down the hand stands instead.
func (a *Auto) NextPlayCommand(ctx context.Context, view game.PlayView) (game.Command, error) {
	if err := ctx.Err(); err != nil {
		return game.Command{}, err
	}
	if a.done() {
		return game.NewCommand(game.CmdQuit), nil
	}

	if a.rejected {
		a.rejected = false
		return game.MoveCommand(table.Stand), nil
	}
	move := a.playing.NextPlay(view.NumHands, view.Hand, view.Dealer, view.Bet)
	return game.MoveCommand(move), nil
}
