package main

import (
	"fmt"

	"github.com/lox/holdem-equity/internal/card"
	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/ranges"
)

// EnumerateCmd computes exact equity via full enumeration (spec §4.6).
type EnumerateCmd struct {
	Hero     string   `arg:"" help:"Hero hand, e.g. 'AsKs'."`
	Villains []string `arg:"" help:"Villain ranges, e.g. 'QQ' 'AKs+,TT+'." required:"true"`
	Board    string   `short:"b" help:"Community board cards, e.g. 'Td7s8h'."`
	Parallel bool     `short:"p" help:"Split work across goroutines." default:"true"`
}

func (c *EnumerateCmd) Run() error {
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

	villains := make([]ranges.Table, len(c.Villains))
	for i, spec := range c.Villains {
		tbl, err := ranges.Parse(spec)
		if err != nil {
			return fmt.Errorf("villain %d: %w", i+1, err)
		}
		villains[i] = tbl
	}

	logger.Debug("enumerating", "hero", c.Hero, "board", c.Board, "villains", len(villains), "parallel", c.Parallel)

	var out []equity.Equity
	elapsed, err := timed(func() error {
		var runErr error
		if c.Parallel {
			out, runErr = equity.EnumerateParallel(board, hero, villains)
		} else {
			out, runErr = equity.Enumerate(board, hero, villains)
		}
		return runErr
	})
	if err != nil {
		return err
	}

	displayBoard(c.Board)
	displayEquities(playerLabels(c.Hero, c.Villains), out, 0, elapsed)
	return nil
}
