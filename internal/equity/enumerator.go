package equity

import (
	"fmt"

	"github.com/lox/holdem-equity/internal/card"
	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/ranges"
)

// validate checks the inputs of Enumerate, EnumerateParallel and
// SimulateRange against spec §7's Validation error kind. Simulate, which
// takes a villain count instead of ranges, makes its own checks.
func validate(board, hero card.CardSet, villains []ranges.Table) error {
	if hero.Count() != 2 {
		return fmt.Errorf("equity: hero hand must have exactly 2 cards, got %d", hero.Count())
	}
	if board.Count() > 5 {
		return fmt.Errorf("equity: board must have at most 5 cards, got %d", board.Count())
	}
	if board.And(hero) != 0 {
		return fmt.Errorf("equity: hero cards collide with the board")
	}
	if len(villains) < 1 || len(villains) > 8 {
		return fmt.Errorf("equity: villain count must be in [1,8], got %d", len(villains))
	}
	for i, v := range villains {
		if v.IsEmpty() {
			return fmt.Errorf("equity: villain %d has an empty range", i)
		}
	}
	return nil
}

func remainingUniverse(known card.CardSet) []card.Card {
	remaining := make([]card.Card, 0, 52-known.Count())
	for s := card.Suit(0); s < card.NumSuits; s++ {
		for r := card.Two; r <= card.Ace; r++ {
			c := card.NewCard(r, s)
			if !known.Has(c) {
				remaining = append(remaining, c)
			}
		}
	}
	return remaining
}

// Enumerate computes exact showdown equity for hero against the declared
// villain ranges, per spec §4.6: recursive board completion followed by
// recursive villain hand assignment, scoring every leaf.
func Enumerate(board, hero card.CardSet, villains []ranges.Table) ([]Equity, error) {
	if err := validate(board, hero, villains); err != nil {
		return nil, err
	}
	if err := checkCapacity(board.Count(), villains); err != nil {
		return nil, err
	}

	evaluator.Init()

	known := board.Or(hero)
	remaining := remainingUniverse(known)
	missing := 5 - board.Count()

	n := len(villains) + 1
	tallies := make([]Tally, n)
	scratch := make([]evaluator.HandScore, n)
	assigned := make([]card.CardSet, len(villains))

	enumerateBoardCompletions(remaining, missing, func(extra []card.Card) {
		boardFull := board
		for _, c := range extra {
			boardFull = boardFull.Add(c)
		}
		heroHand := boardFull.Or(hero)
		scratch[0] = evaluator.Evaluate(heroHand)

		enumerateVillainAssignment(0, boardFull.Or(hero), assigned, villains, func() {
			for i, a := range assigned {
				scratch[i+1] = evaluator.Evaluate(boardFull.Or(a))
			}
			record(tallies, scratch)
		})
	})

	if tallies[0].Total == 0 {
		return nil, ErrInsufficientData
	}

	out := make([]Equity, n)
	for i, t := range tallies {
		out[i] = t.toEquity()
	}
	return out, nil
}

// enumerateBoardCompletions invokes f once for every unordered way to
// complete the board with `missing` cards from remaining, choosing indices
// in strictly increasing order so each completion is visited exactly once.
func enumerateBoardCompletions(remaining []card.Card, missing int, f func(extra []card.Card)) {
	if missing == 0 {
		f(nil)
		return
	}
	chosen := make([]card.Card, missing)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == missing {
			f(chosen)
			return
		}
		for i := start; i < len(remaining); i++ {
			chosen[depth] = remaining[i]
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}

// enumerateVillainAssignment recursively assigns a concrete hand to each
// villain in declared order, skipping any hand that collides with cards
// already fixed (the board, hero, or an earlier villain's hand), and
// invokes leaf once assignments are complete for all of them.
func enumerateVillainAssignment(idx int, used card.CardSet, assigned []card.CardSet, villains []ranges.Table, leaf func()) {
	if idx == len(villains) {
		leaf()
		return
	}
	villains[idx].ForEachHand(func(a, b card.Card) {
		if used.Has(a) || used.Has(b) {
			return
		}
		assigned[idx] = card.CardSet(0).With(a).With(b)
		enumerateVillainAssignment(idx+1, used.Add(a).Add(b), assigned, villains, leaf)
	})
}
