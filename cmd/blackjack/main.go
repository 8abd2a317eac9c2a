package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every mode
type Globals struct {
	Seed    int64  `help:"Shuffle seed, 0 picks one from the clock"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`
	Rules   string `type:"path" help:"HCL file overriding the table rules"`
	Journal string `type:"path" help:"Write a JSON-lines round journal to this file"`
	Summary string `type:"path" help:"Write a TOML session summary to this file on exit"`

	Stdout io.Writer    `kong:"-"`
	Stderr io.Writer    `kong:"-"`
	Clock  quartz.Clock `kong:"-"`
}

type CLI struct {
	Globals

	Version     kong.VersionFlag `help:"Show version"`
	Interactive InteractiveCmd   `cmd:"" aliases:"i" help:"Play at the console"`
	Simulate    SimulateCmd      `cmd:"" aliases:"s" help:"Let a counting strategy play a number of shoes"`
	Debug       DebugCmd         `cmd:"" aliases:"d" help:"Replay a command file against a shoe file"`
}

func main() {
	cli := CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr}}
	parser := kong.Must(&cli,
		kong.Name("blackjack"),
		kong.Description("Blackjack with card counting strategies"),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	// argument errors end the process with status 0
	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Println("Incorrect number of arguments")
		parser.Errorf("%s", err)
		os.Exit(0)
	}

	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
