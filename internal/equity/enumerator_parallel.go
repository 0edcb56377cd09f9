package equity

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-equity/internal/card"
	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/ranges"
)

// EnumerateParallel is equivalent to Enumerate but splits work across
// goroutines at board-completion granularity. Per spec §5, each worker
// owns its own tallies (merged after all workers finish) and the score
// table is read-only and shared.
func EnumerateParallel(board, hero card.CardSet, villains []ranges.Table) ([]Equity, error) {
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

	var completions [][]card.Card
	enumerateBoardCompletions(remaining, missing, func(extra []card.Card) {
		cp := make([]card.Card, len(extra))
		copy(cp, extra)
		completions = append(completions, cp)
	})

	n := len(villains) + 1
	workers := workerCount(len(completions))
	chunk := (len(completions) + workers - 1) / workers
	results := make([][]Tally, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := min(start+chunk, len(completions))
		if start >= end {
			results[w] = make([]Tally, n)
			continue
		}
		g.Go(func() error {
			results[w] = enumerateChunk(completions[start:end], board, hero, villains, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tallies := make([]Tally, n)
	for _, per := range results {
		for i := range tallies {
			tallies[i] = tallies[i].Merge(per[i])
		}
	}

	if tallies[0].Total == 0 {
		return nil, ErrInsufficientData
	}

	out := make([]Equity, n)
	for i, t := range tallies {
		out[i] = t.toEquity()
	}
	return out, nil
}

func enumerateChunk(completions [][]card.Card, board, hero card.CardSet, villains []ranges.Table, n int) []Tally {
	scratch := make([]evaluator.HandScore, n)
	assigned := make([]card.CardSet, len(villains))
	tallies := make([]Tally, n)

	for _, extra := range completions {
		boardFull := board
		for _, c := range extra {
			boardFull = boardFull.Add(c)
		}
		scratch[0] = evaluator.Evaluate(boardFull.Or(hero))

		enumerateVillainAssignment(0, boardFull.Or(hero), assigned, villains, func() {
			for i, a := range assigned {
				scratch[i+1] = evaluator.Evaluate(boardFull.Or(a))
			}
			record(tallies, scratch)
		})
	}
	return tallies
}

func workerCount(items int) int {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers > items {
		workers = items
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
