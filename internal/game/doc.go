// Package game implements the blackjack round engine.
//
// The main type is Engine, which runs rounds for a single player against the
// dealer: betting, dealing, the player's turn over up to four split hands,
// the dealer's turn and settlement.
//
// # Basic Usage
//
// The engine pulls commands from a CommandSource and reports everything that
// happens on its EventBus:
//
//	shoe := deck.NewShoe(6, randutil.New(42))
//	e := game.NewEngine(game.DefaultRules(10, 100), shoe, 500, source,
//	    game.WithLogger(logger))
//	e.EventBus().Subscribe(console)
//	err := e.Run(ctx)
//
// Run returns nil once the source issues a quit command.
//
// # Deterministic Testing
//
// Build the shoe from an explicit card list with deck.NewShoeFromCards and
// turn auto-shuffling off in the rules. The cards are then dealt in exactly
// the order given:
//
//	shoe, _ := deck.NewShoeFromCards(cards, nil)
//	rules := game.DefaultRules(10, 100)
//	rules.AutoShuffle = false
//
// # Architecture
//
// Engine delegates to:
//   - table.Player and table.Dealer: hand state and the legality of each move
//   - table.Settle: outcome and payout of each hand
//   - strategy.Betting and strategy.Playing: counts and advice
//   - statistics.Statistics: session counters
//
// Illegal commands never change state. They are reported as
// IllegalCommandEvent and the engine waits for the next command.
package game
