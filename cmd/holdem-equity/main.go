// Command holdem-equity computes exact or simulated Texas Hold'em equity
// for a hero hand against one or more villain ranges.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

var cli struct {
	Enumerate   EnumerateCmd   `cmd:"" help:"Compute exact equity by enumerating every remaining deal."`
	Simulate    SimulateCmd    `cmd:"" help:"Estimate equity with a Monte-Carlo simulation."`
	Interactive InteractiveCmd `cmd:"" help:"Launch an interactive equity explorer."`

	Verbose bool `short:"v" help:"Verbose diagnostic logging."`
}

func newLogger() *log.Logger {
	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("holdem-equity"),
		kong.Description("Exact and simulated Texas Hold'em equity calculator."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
