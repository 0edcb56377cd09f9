package main

import (
	"fmt"
	"time"

	"github.com/lox/holdem-equity/internal/card"
	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/randutil"
	"github.com/lox/holdem-equity/internal/ranges"
)

// SimulateCmd estimates equity via Monte-Carlo simulation (spec §4.7).
// Villain ranges narrow the draw with rejection sampling; pass the single
// villain argument "any" to simulate one villain playing every remaining
// hand.
type SimulateCmd struct {
	Hero     string   `arg:"" help:"Hero hand, e.g. 'AsAd'."`
	Villains []string `arg:"" help:"Villain ranges, or 'any' for an unconstrained opponent." required:"true"`
	Board    string   `short:"b" help:"Community board cards, e.g. '2c7d9h'."`
	Rounds   int      `short:"r" help:"Number of simulated rounds." default:"1000000"`
	Seed     int64    `help:"RNG seed (0 picks one from the current time)."`
	Parallel bool     `short:"p" help:"Split rounds across goroutines." default:"true"`
}

func (c *SimulateCmd) Run() error {
	logger := newLogger()
	heroCards, err := card.ParseCards(c.Hero)
	if err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	hero := card.CardSet(0)
	for _, cd := range heroCards {
		hero = hero.Add(cd)
	}

	board := card.CardSet(0)
	if c.Board != "" {
		boardCards, err := card.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("board: %w", err)
		}
		for _, cd := range boardCards {
			board = board.Add(cd)
		}
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	unconstrained := len(c.Villains) == 1 && c.Villains[0] == "any"

	logger.Debug("simulating", "hero", c.Hero, "board", c.Board, "rounds", c.Rounds, "seed", seed, "parallel", c.Parallel, "unconstrained", unconstrained)

	var villains []ranges.Table
	if !unconstrained {
		villains = make([]ranges.Table, len(c.Villains))
		for i, spec := range c.Villains {
			tbl, perr := ranges.Parse(spec)
			if perr != nil {
				return fmt.Errorf("villain %d: %w", i+1, perr)
			}
			villains[i] = tbl
		}
	}

	var out []equity.Equity
	elapsed, err := timed(func() error {
		var runErr error
		switch {
		case unconstrained && c.Parallel:
			out, runErr = equity.SimulateParallel(board, hero, 1, c.Rounds, rng)
		case unconstrained:
			out, runErr = equity.Simulate(board, hero, 1, c.Rounds, rng)
		case c.Parallel:
			out, runErr = equity.SimulateRangeParallel(board, hero, villains, c.Rounds, rng)
		default:
			out, runErr = equity.SimulateRange(board, hero, villains, c.Rounds, rng)
		}
		return runErr
	})
	if err != nil {
		return err
	}

	displayBoard(c.Board)
	displayEquities(playerLabels(c.Hero, c.Villains), out, c.Rounds, elapsed)
	return nil
}
