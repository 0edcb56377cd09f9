// Package equity implements the combinatorial equity engine: exact
// enumeration and Monte-Carlo simulation of hero-vs-villain-range showdown
// equity, built on internal/card and internal/evaluator.
package equity

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is returned when an enumeration traverses zero
// complete leaves — every villain hand assignment collided with the board
// or hero hand. Spec §7 classifies this as a reportable "no data" result,
// not a validation error.
var ErrInsufficientData = errors.New("equity: no valid combinations (every assignment collides)")

// maxSafeInt is the largest integer an IEEE-754 float64 can represent
// exactly: its 53-bit mantissa.
const maxSafeInt = uint64(1)<<53 - 1

// safeFloat64 converts n to float64, panicking if n does not fit losslessly
// in the mantissa. Spec §4.8 requires this: silently losing precision on a
// wins/total count would corrupt reported equity.
func safeFloat64(n uint64) float64 {
	if maxSafeInt&n != n {
		panic(fmt.Sprintf("equity: %d does not fit in a float64's 53-bit mantissa", n))
	}
	return float64(n)
}

// Tally accumulates one player's showdown results across an enumeration or
// simulation run.
type Tally struct {
	Wins  uint64
	Ties  float64
	Total uint64
}

// Equity is the externally reported result: win/tie/total counts plus the
// percentages derived from them.
type Equity struct {
	Wins  uint64
	Ties  float64
	Total uint64
}

func (t Tally) toEquity() Equity {
	return Equity{Wins: t.Wins, Ties: t.Ties, Total: t.Total}
}

// EquityFraction returns (wins+ties)/total.
func (e Equity) EquityFraction() float64 {
	return (safeFloat64(e.Wins) + e.Ties) / safeFloat64(e.Total)
}

// WinFraction returns wins/total.
func (e Equity) WinFraction() float64 {
	return safeFloat64(e.Wins) / safeFloat64(e.Total)
}

// TieFraction returns ties/total.
func (e Equity) TieFraction() float64 {
	return e.Ties / safeFloat64(e.Total)
}

// Merge combines another tally accumulated by an independent worker into t,
// used by the parallel enumerator/simulator to fold per-worker results
// together after all workers finish (spec §5: workers own their tallies,
// merged at the end).
func (t Tally) Merge(other Tally) Tally {
	return Tally{
		Wins:  t.Wins + other.Wins,
		Ties:  t.Ties + other.Ties,
		Total: t.Total + other.Total,
	}
}
