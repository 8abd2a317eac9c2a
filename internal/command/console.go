// Package command provides the sources the engine reads player commands
// from: a readline console, a command script and a strategy-driven player.
package command

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lox/blackjack/internal/game"
)

// DefaultHistoryFile keeps console history between sessions
const DefaultHistoryFile = "/tmp/blackjack_history"

// lineReader is the part of *readline.Instance the console uses
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// ConsoleConfig configures the interactive console
type ConsoleConfig struct {
	Prompt      string
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
}

// Console reads commands typed at the terminal
type Console struct {
	rl lineReader
}

// NewConsole opens a readline console with completion for every command
func NewConsole(cfg ConsoleConfig) (*Console, error) {
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = DefaultHistoryFile
	}

	completer := readline.NewPrefixCompleter()
	for _, tok := range []string{"b", "d", "h", "s", "u", "p", "2", "i", "ad", "st", "$", "q"} {
		completer.Children = append(completer.Children, readline.PcItem(tok))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "q",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
	})
	if err != nil {
		return nil, err
	}
	return &Console{rl: rl}, nil
}

// Close releases the terminal
func (c *Console) Close() error {
	return c.rl.Close()
}

func (c *Console) NextBetCommand(ctx context.Context) (game.Command, error) {
	return c.next(ctx)
}

func (c *Console) NextPlayCommand(ctx context.Context, _ game.PlayView) (game.Command, error) {
	return c.next(ctx)
}

// next reads lines until a non-blank one arrives. Ctrl-C and end of input
// both quit.
func (c *Console) next(ctx context.Context) (game.Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Command{}, err
		}

		line, err := c.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return game.NewCommand(game.CmdQuit), nil
		}
		if err != nil {
			return game.Command{}, err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		return game.ParseCommand(line), nil
	}
}
