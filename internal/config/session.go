// Package config turns command line arguments and the optional rules file
// into a validated session description.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/strategy"
)

// ErrInvalid is matched by every argument validation failure
var ErrInvalid = errors.New("invalid argument")

// Mode selects where commands come from
type Mode string

const (
	Interactive Mode = "interactive"
	Simulate    Mode = "simulate"
	Debug       Mode = "debug"
)

// Argument bounds
const (
	MinDecks          = 4
	MaxDecks          = 8
	MinShufflePercent = 10
	MaxShufflePercent = 100
	MinBalanceBets    = 50
	MaxBetMultipleLow = 10
	MaxBetMultipleHi  = 20
)

// ArgumentError is a startup diagnostic such as "Invalid balance". Err holds
// the parse failure behind it, if any.
type ArgumentError struct {
	Diagnostic string
	Err        error
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return e.Diagnostic + ": " + e.Err.Error()
	}
	return e.Diagnostic
}

func (e *ArgumentError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalid, e.Err}
	}
	return []error{ErrInvalid}
}

func invalid(diagnostic string) error {
	return &ArgumentError{Diagnostic: diagnostic}
}

// Args are the positional arguments as typed. Which of the mode specific
// fields are used depends on the mode.
type Args struct {
	MinBet  string
	MaxBet  string
	Balance string

	Decks   string
	Shuffle string

	Shoes    string
	Strategy string

	ShoeFile    string
	CommandFile string
}

// Session is a validated set of session parameters
type Session struct {
	Mode    Mode
	MinBet  int
	MaxBet  int
	Balance int

	// Decks and ShufflePercent are unused in debug mode, where the shoe
	// file decides the deck count and the shoe is never reshuffled.
	Decks          int
	ShufflePercent int

	// Shoes and Strategy drive simulation mode
	Shoes    int
	Strategy string

	ShoeFile    string
	CommandFile string
}

// Parse converts the raw arguments for mode and validates them
func Parse(mode Mode, args Args) (Session, error) {
	s := Session{Mode: mode}

	var err error
	if s.MinBet, err = parseInt(args.MinBet, "Invalid bet args"); err != nil {
		return Session{}, err
	}
	if s.MaxBet, err = parseInt(args.MaxBet, "Invalid bet args"); err != nil {
		return Session{}, err
	}
	if s.Balance, err = parseInt(args.Balance, "Invalid balance"); err != nil {
		return Session{}, err
	}

	switch mode {
	case Interactive, Simulate:
		if s.Decks, err = parseInt(args.Decks, "Invalid number of decks"); err != nil {
			return Session{}, err
		}
		if s.ShufflePercent, err = parseInt(args.Shuffle, "Invalid shuffle parameter"); err != nil {
			return Session{}, err
		}
		if mode == Simulate {
			if s.Shoes, err = parseInt(args.Shoes, "Invalid sNumber parameter"); err != nil {
				return Session{}, err
			}
			s.Strategy = args.Strategy
		}
	case Debug:
		s.ShoeFile = args.ShoeFile
		s.CommandFile = args.CommandFile
	}

	if err := s.Validate(); err != nil {
		return Session{}, err
	}
	return s, nil
}

func parseInt(raw, diagnostic string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ArgumentError{Diagnostic: diagnostic, Err: err}
	}
	return n, nil
}

// Validate checks every argument range in the order they appear on the
// command line and reports the first one out of range.
func (s Session) Validate() error {
	if s.MinBet < 1 || s.MaxBet < MaxBetMultipleLow*s.MinBet || s.MaxBet > MaxBetMultipleHi*s.MinBet {
		return invalid("Invalid bet args")
	}
	if s.Balance < MinBalanceBets*s.MinBet {
		return invalid("Invalid balance")
	}

	switch s.Mode {
	case Interactive, Simulate:
		if s.Decks < MinDecks || s.Decks > MaxDecks {
			return invalid("Invalid number of decks")
		}
		if s.ShufflePercent < MinShufflePercent || s.ShufflePercent > MaxShufflePercent {
			return invalid("Invalid shuffle parameter")
		}
		if s.Mode == Simulate {
			if s.Shoes <= 0 {
				return invalid("Invalid sNumber parameter")
			}
			if !slices.Contains(strategy.PresetNames(), s.Strategy) {
				return invalid("Invalid betting strategy")
			}
		}
	case Debug:
		if s.ShoeFile == "" {
			return invalid("Invalid shoe file")
		}
		if s.CommandFile == "" {
			return invalid("Invalid command file")
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, s.Mode)
	}
	return nil
}

// Rules returns the table rules for the session before any rules file is
// applied. Debug sessions never shuffle on their own.
func (s Session) Rules() game.Rules {
	rules := game.DefaultRules(s.MinBet, s.MaxBet)
	if s.ShufflePercent > 0 {
		rules.ShufflePercent = s.ShufflePercent
	}
	rules.AutoShuffle = s.Mode != Debug
	return rules
}
