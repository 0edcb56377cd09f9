package equity

import (
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-equity/internal/card"
	"github.com/lox/holdem-equity/internal/ranges"
)

// SimulateParallel splits `rounds` unconstrained Monte-Carlo trials across
// goroutines. Per spec §5, each worker owns its own RNG (seeded
// independently off the caller's rng) and its own deck and tallies; results
// are merged once every worker finishes.
func SimulateParallel(board, hero card.CardSet, villainCount, rounds int, rng *rand.Rand) ([]Equity, error) {
	workers := workerCount(rounds)
	perWorker := rounds / workers
	remainder := rounds % workers

	results := make([][]Equity, workers)
	errs := make([]error, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		n := perWorker
		if w < remainder {
			n++
		}
		if n == 0 {
			continue
		}
		workerSeed := rng.Int63()
		g.Go(func() error {
			results[w], errs[w] = Simulate(board, hero, villainCount, n, rand.New(rand.NewSource(workerSeed)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeSimulationResults(results, errs, villainCount+1)
}

// SimulateRangeParallel is the range-constrained counterpart of
// SimulateParallel.
func SimulateRangeParallel(board, hero card.CardSet, villains []ranges.Table, rounds int, rng *rand.Rand) ([]Equity, error) {
	workers := workerCount(rounds)
	perWorker := rounds / workers
	remainder := rounds % workers

	results := make([][]Equity, workers)
	errs := make([]error, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		n := perWorker
		if w < remainder {
			n++
		}
		if n == 0 {
			continue
		}
		workerSeed := rng.Int63()
		g.Go(func() error {
			results[w], errs[w] = SimulateRange(board, hero, villains, n, rand.New(rand.NewSource(workerSeed)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeSimulationResults(results, errs, len(villains)+1)
}

// mergeSimulationResults folds per-worker equity results (each already
// expressed as win/tie/total tallies) back into tallies and reports
// ErrInsufficientData only if every worker failed to produce a round.
func mergeSimulationResults(results [][]Equity, errs []error, n int) ([]Equity, error) {
	tallies := make([]Tally, n)
	sawResult := false
	for w, res := range results {
		if res == nil {
			if errs[w] != nil && errs[w] != ErrInsufficientData {
				return nil, errs[w]
			}
			continue
		}
		sawResult = true
		for i, e := range res {
			tallies[i].Wins += e.Wins
			tallies[i].Ties += e.Ties
			tallies[i].Total += e.Total
		}
	}
	if !sawResult || tallies[0].Total == 0 {
		return nil, ErrInsufficientData
	}
	out := make([]Equity, n)
	for i, t := range tallies {
		out[i] = t.toEquity()
	}
	return out, nil
}
