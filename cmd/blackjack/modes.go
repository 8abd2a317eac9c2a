package main

import (
	"github.com/lox/blackjack/internal/config"
)

type InteractiveCmd struct {
	MinBet  string `arg:"" name:"min-bet" help:"Minimum bet"`
	MaxBet  string `arg:"" name:"max-bet" help:"Maximum bet, 10 to 20 times the minimum"`
	Balance string `arg:"" help:"Starting balance, at least 50 minimum bets"`
	Decks   string `arg:"" help:"Decks in the shoe, 4 to 8"`
	Shuffle string `arg:"" help:"Percentage of the shoe dealt before reshuffling, 10 to 100"`
}

func (c *InteractiveCmd) Run(g *Globals) error {
	return g.run(config.Interactive, config.Args{
		MinBet:  c.MinBet,
		MaxBet:  c.MaxBet,
		Balance: c.Balance,
		Decks:   c.Decks,
		Shuffle: c.Shuffle,
	})
}

type SimulateCmd struct {
	MinBet   string `arg:"" name:"min-bet" help:"Minimum bet"`
	MaxBet   string `arg:"" name:"max-bet" help:"Maximum bet, 10 to 20 times the minimum"`
	Balance  string `arg:"" help:"Starting balance, at least 50 minimum bets"`
	Decks    string `arg:"" help:"Decks in the shoe, 4 to 8"`
	Shuffle  string `arg:"" help:"Percentage of the shoe dealt before reshuffling, 10 to 100"`
	Shoes    string `arg:"" help:"Number of shoes to play"`
	Strategy string `arg:"" help:"Strategy preset: BS, BS-AF, HL or HL-AF"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	return g.run(config.Simulate, config.Args{
		MinBet:   c.MinBet,
		MaxBet:   c.MaxBet,
		Balance:  c.Balance,
		Decks:    c.Decks,
		Shuffle:  c.Shuffle,
		Shoes:    c.Shoes,
		Strategy: c.Strategy,
	})
}

type DebugCmd struct {
	MinBet      string `arg:"" name:"min-bet" help:"Minimum bet"`
	MaxBet      string `arg:"" name:"max-bet" help:"Maximum bet, 10 to 20 times the minimum"`
	Balance     string `arg:"" help:"Starting balance, at least 50 minimum bets"`
	ShoeFile    string `arg:"" name:"shoe-file" help:"File listing the shoe in dealing order"`
	CommandFile string `arg:"" name:"cmd-file" help:"File of commands to play"`
}

func (c *DebugCmd) Run(g *Globals) error {
	return g.run(config.Debug, config.Args{
		MinBet:      c.MinBet,
		MaxBet:      c.MaxBet,
		Balance:     c.Balance,
		ShoeFile:    c.ShoeFile,
		CommandFile: c.CommandFile,
	})
}
