package game

import (
	"strconv"
	"strings"

	"github.com/lox/blackjack/internal/table"
)

// CommandKind identifies a command in the player's vocabulary
type CommandKind int

const (
	CmdInvalid CommandKind = iota
	CmdBet
	CmdDeal
	CmdHit
	CmdStand
	CmdSurrender
	CmdSplit
	CmdDouble
	CmdInsurance
	CmdAdvice
	CmdStats
	CmdBalance
	CmdQuit
)

var commandTokens = map[string]CommandKind{
	"b":  CmdBet,
	"d":  CmdDeal,
	"h":  CmdHit,
	"s":  CmdStand,
	"u":  CmdSurrender,
	"p":  CmdSplit,
	"2":  CmdDouble,
	"i":  CmdInsurance,
	"ad": CmdAdvice,
	"st": CmdStats,
	"$":  CmdBalance,
	"q":  CmdQuit,
}

// Token returns the command as typed, without arguments
func (k CommandKind) Token() string {
	for tok, kind := range commandTokens {
		if kind == k {
			return tok
		}
	}
	return ""
}

// Command is one parsed player command
type Command struct {
	Kind CommandKind
	// Amount is the bet for CmdBet when HasAmount is set. A bare "b" bets
	// the table minimum.
	Amount    int
	HasAmount bool
	// Raw is the text the command was parsed from
	Raw string
}

// ParseCommand parses a single command line. Anything outside the vocabulary
// comes back as CmdInvalid with Raw set, so it can be reported.
func ParseCommand(line string) Command {
	raw := strings.TrimSpace(line)
	fields := strings.Fields(raw)
	cmd := Command{Raw: raw}

	switch len(fields) {
	case 1:
		cmd.Kind = commandTokens[fields[0]]
	case 2:
		if fields[0] != "b" {
			return cmd
		}
		amount, err := strconv.Atoi(fields[1])
		if err != nil {
			return cmd
		}
		cmd.Kind = CmdBet
		cmd.Amount = amount
		cmd.HasAmount = true
	}
	return cmd
}

// BetCommand returns a bet of amount
func BetCommand(amount int) Command {
	return Command{Kind: CmdBet, Amount: amount, HasAmount: true, Raw: "b " + strconv.Itoa(amount)}
}

// NewCommand returns the argument-free command of kind k
func NewCommand(k CommandKind) Command {
	return Command{Kind: k, Raw: k.Token()}
}

// MoveCommand returns the command that carries out m
func MoveCommand(m table.Move) Command {
	switch m {
	case table.Hit:
		return NewCommand(CmdHit)
	case table.Stand:
		return NewCommand(CmdStand)
	case table.Surrender:
		return NewCommand(CmdSurrender)
	case table.Split:
		return NewCommand(CmdSplit)
	case table.DoubleThenStand:
		return NewCommand(CmdDouble)
	case table.Insure:
		return NewCommand(CmdInsurance)
	default:
		return Command{Raw: m.Symbol()}
	}
}

// String returns the command as it would be typed
func (c Command) String() string {
	if c.Raw != "" {
		return c.Raw
	}
	if c.Kind == CmdBet && c.HasAmount {
		return "b " + strconv.Itoa(c.Amount)
	}
	return c.Kind.Token()
}
