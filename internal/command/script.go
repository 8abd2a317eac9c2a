package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lox/blackjack/internal/game"
)

// Script replays commands from a command file, one token per command. A "b"
// followed by a number is read as a single bet command.
type Script struct {
	cmds []string
	echo func(string)
}

// ScriptOption configures a Script
type ScriptOption func(*Script)

// WithEcho calls fn with each command as it is read
func WithEcho(fn func(string)) ScriptOption {
	return func(s *Script) {
		s.echo = fn
	}
}

// NewScript builds a script from command tokens
func NewScript(tokens []string, opts ...ScriptOption) *Script {
	s := &Script{cmds: joinBets(tokens)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadScript reads whitespace-separated command tokens from r
func ReadScript(r io.Reader, opts ...ScriptOption) (*Script, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read command file: %w", err)
	}
	return NewScript(tokens, opts...), nil
}

// LoadScript reads a command file from disk
func LoadScript(path string, opts ...ScriptOption) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open command file: %w", err)
	}
	defer f.Close()

	return ReadScript(f, opts...)
}

func joinBets(tokens []string) []string {
	cmds := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		if tokens[i] == "b" && i+1 < len(tokens) && isNumeric(tokens[i+1]) {
			cmds = append(cmds, "b "+tokens[i+1])
			i++
			continue
		}
		cmds = append(cmds, tokens[i])
	}
	return cmds
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// Remaining returns the commands not yet read
func (s *Script) Remaining() []string {
	return s.cmds
}

func (s *Script) NextBetCommand(ctx context.Context) (game.Command, error) {
	return s.next(ctx)
}

func (s *Script) NextPlayCommand(ctx context.Context, _ game.PlayView) (game.Command, error) {
	return s.next(ctx)
}

// next pops the next command. Once the script runs out every read is a quit.
func (s *Script) next(ctx context.Context) (game.Command, error) {
	if err := ctx.Err(); err != nil {
		return game.Command{}, err
	}
	if len(s.cmds) == 0 {
		return game.NewCommand(game.CmdQuit), nil
	}

	line := s.cmds[0]
	s.cmds = s.cmds[1:]
	if s.echo != nil {
		s.echo(line)
	}
	return game.ParseCommand(line), nil
}
