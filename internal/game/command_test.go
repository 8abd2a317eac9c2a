package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/table"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want Command
	}{
		{"b", Command{Kind: CmdBet, Raw: "b"}},
		{"b 25", Command{Kind: CmdBet, Amount: 25, HasAmount: true, Raw: "b 25"}},
		{"  b   25 ", Command{Kind: CmdBet, Amount: 25, HasAmount: true, Raw: "b   25"}},
		{"d", Command{Kind: CmdDeal, Raw: "d"}},
		{"h", Command{Kind: CmdHit, Raw: "h"}},
		{"s", Command{Kind: CmdStand, Raw: "s"}},
		{"u", Command{Kind: CmdSurrender, Raw: "u"}},
		{"p", Command{Kind: CmdSplit, Raw: "p"}},
		{"2", Command{Kind: CmdDouble, Raw: "2"}},
		{"i", Command{Kind: CmdInsurance, Raw: "i"}},
		{"ad", Command{Kind: CmdAdvice, Raw: "ad"}},
		{"st", Command{Kind: CmdStats, Raw: "st"}},
		{"$", Command{Kind: CmdBalance, Raw: "$"}},
		{"q", Command{Kind: CmdQuit, Raw: "q"}},
		{"b ten", Command{Kind: CmdInvalid, Raw: "b ten"}},
		{"h 2", Command{Kind: CmdInvalid, Raw: "h 2"}},
		{"b 1 2", Command{Kind: CmdInvalid, Raw: "b 1 2"}},
		{"hit", Command{Kind: CmdInvalid, Raw: "hit"}},
		{"", Command{Kind: CmdInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommand(tt.line))
		})
	}
}

func TestCommandString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "b 40", BetCommand(40).String())
	assert.Equal(t, "ad", NewCommand(CmdAdvice).String())
	assert.Equal(t, "b 15", Command{Kind: CmdBet, Amount: 15, HasAmount: true}.String())
	assert.Equal(t, "st", Command{Kind: CmdStats}.String())
	assert.Equal(t, "xyz", ParseCommand("xyz").String())
}

func TestMoveCommand(t *testing.T) {
	t.Parallel()

	tests := map[table.Move]CommandKind{
		table.Hit:             CmdHit,
		table.Stand:           CmdStand,
		table.Surrender:       CmdSurrender,
		table.Split:           CmdSplit,
		table.DoubleThenStand: CmdDouble,
		table.Insure:          CmdInsurance,
	}
	for move, kind := range tests {
		cmd := MoveCommand(move)
		assert.Equal(t, kind, cmd.Kind, move.String())
		assert.Equal(t, move.Symbol(), cmd.String())
	}
}
