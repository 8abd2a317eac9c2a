package game

import (
	"context"

	"github.com/lox/blackjack/internal/table"
)

// PlayView is what a command source may look at when asked for a move
type PlayView struct {
	NumHands int
	Hand     *table.PlayerHand
	Dealer   *table.Hand
	Bet      int
}

// CommandSource supplies the engine with commands: a console, a script file
// or a strategy driver. Blocking reads should honour ctx.
type CommandSource interface {
	// NextBetCommand is asked between rounds
	NextBetCommand(ctx context.Context) (Command, error)
	// NextPlayCommand is asked for each decision on a player hand
	NextPlayCommand(ctx context.Context, view PlayView) (Command, error)
}
