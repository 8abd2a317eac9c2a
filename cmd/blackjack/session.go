package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/command"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/history"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/strategy"
)

// session is everything a mode needs to build its engine
type session struct {
	cfg    config.Session
	rules  game.Rules
	shoe   *deck.Shoe
	seed   int64
	logger *log.Logger
	clock  quartz.Clock
}

// run validates the arguments, plays the session and writes the optional
// outputs. Startup diagnostics are printed and the process still exits 0.
func (g *Globals) run(mode config.Mode, args config.Args) error {
	cfg, err := config.Parse(mode, args)
	if err != nil {
		return g.diagnose(err)
	}

	logger := shared.SetupLogger(g.Stderr, g.Verbose)
	clock := g.clock()

	rules, err := config.LoadRules(g.Rules, cfg.Rules())
	if err != nil {
		return err
	}

	seed := randutil.Seed(g.Seed, clock)
	rng := randutil.New(seed)

	var shoe *deck.Shoe
	if cfg.Mode == config.Debug {
		shoe, err = deck.LoadShoe(cfg.ShoeFile, rng)
		if err != nil {
			return g.diagnose(&config.ArgumentError{Diagnostic: "Invalid shoe file", Err: err})
		}
	} else {
		shoe = deck.NewShoe(cfg.Decks, rng)
	}

	logger.Debug("Starting session", "mode", cfg.Mode, "decks", shoe.Decks(), "seed", seed,
		"min_bet", rules.MinBet, "max_bet", rules.MaxBet)

	s := &session{cfg: cfg, rules: rules, shoe: shoe, seed: seed, logger: logger, clock: clock}
	return g.play(s)
}

func (g *Globals) clock() quartz.Clock {
	if g.Clock != nil {
		return g.Clock
	}
	return quartz.NewReal()
}

func (g *Globals) diagnose(err error) error {
	var argErr *config.ArgumentError
	if errors.As(err, &argErr) {
		fmt.Fprintln(g.Stdout, argErr.Error())
		return nil
	}
	return err
}

// play wires the command source and subscribers for the mode and runs the
// engine until the player quits
func (g *Globals) play(s *session) error {
	var (
		source      game.CommandSource
		subscribers []game.EventSubscriber
		opts        = []game.EngineOption{game.WithLogger(s.logger), game.WithClock(s.clock)}
	)

	switch s.cfg.Mode {
	case config.Interactive:
		out := display.NewConsole(g.Stdout)
		console, err := command.NewConsole(command.ConsoleConfig{Stdout: g.Stdout})
		if err != nil {
			return fmt.Errorf("failed to open console: %w", err)
		}
		defer func() {
			if err := console.Close(); err != nil {
				s.logger.Error("Failed to close console", "error", err)
			}
		}()
		out.Banner(" ♠ ♥ Blackjack ♦ ♣ ")
		source = console
		subscribers = append(subscribers, out)

	case config.Simulate:
		preset, err := strategy.LookupPreset(s.cfg.Strategy)
		if err != nil {
			return g.diagnose(&config.ArgumentError{Diagnostic: "Invalid betting strategy", Err: err})
		}
		auto := command.NewAutoFromPreset(preset, s.rules.Limits(), s.shoe.Decks(), s.cfg.Shoes)
		opts = append(opts,
			game.WithBettingStrategies(auto.Betting()),
			game.WithPlayingStrategies(auto.Playing()))
		source = auto
		subscribers = append(subscribers, auto, display.NewSummary(g.Stdout))

	case config.Debug:
		out := display.NewConsole(g.Stdout, display.WithPlainText())
		script, err := command.LoadScript(s.cfg.CommandFile, command.WithEcho(out.Echo))
		if err != nil {
			return g.diagnose(&config.ArgumentError{Diagnostic: "Invalid command file", Err: err})
		}
		source = script
		subscribers = append(subscribers, out)
	}

	if g.Journal != "" {
		f, err := os.Create(g.Journal)
		if err != nil {
			return fmt.Errorf("failed to create journal: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				s.logger.Error("Failed to close journal", "error", err)
			}
		}()
		subscribers = append(subscribers, history.NewJournal(f))
	}

	engine := game.NewEngine(s.rules, s.shoe, float64(s.cfg.Balance), source, opts...)
	for _, sub := range subscribers {
		engine.EventBus().Subscribe(sub)
	}

	ctx, cancel := shared.SetupSignalHandler(s.logger)
	defer cancel()

	started := s.clock.Now()
	err := engine.Run(ctx)
	if errors.Is(err, context.Canceled) {
		s.logger.Warn("Session interrupted", "balance", engine.Player().Balance())
		err = nil
	}
	if err != nil {
		return err
	}

	if err := engine.Statistics().Validate(); err != nil {
		s.logger.Warn("Session statistics are inconsistent", "error", err)
	}
	s.logger.Debug("Session finished",
		"duration", s.clock.Since(started),
		"shuffles", engine.Shuffles(),
		"player_hands", engine.Statistics().PlayerHands)

	if g.Summary == "" {
		return nil
	}
	summary := history.NewSummary(engine.Statistics(), engine.Player().Balance(), started, s.clock.Now())
	summary.Session.Mode = string(s.cfg.Mode)
	summary.Session.Strategy = s.cfg.Strategy
	summary.Session.Seed = s.seed
	summary.Session.Decks = s.shoe.Decks()
	summary.Session.MinBet = s.rules.MinBet
	summary.Session.MaxBet = s.rules.MaxBet
	summary.Session.Shuffles = engine.Shuffles()
	return history.WriteSummary(g.Summary, summary)
}
