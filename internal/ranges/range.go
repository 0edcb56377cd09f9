// Package ranges implements the 13×13 RangeTable and its range-string
// parser, exactly as described in spec §4.4.
package ranges

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-equity/internal/card"
)

// Table is a compressed 13×13 grid of concrete hand-shapes. Indexing
// convention: for ranks high >= low, cell [high][low] holds suited
// combinations and [low][high] holds offsuit combinations. A paired cell
// (high == low) is reached by either path and is always non-suited.
type Table struct {
	rows [card.NumRanks]card.RankSet
}

// Empty returns a table with no hands.
func Empty() Table {
	return Table{}
}

// Full returns a table containing every possible two-card hand.
func Full() Table {
	var t Table
	for high := card.Two; high <= card.Ace; high++ {
		for low := card.Two; low <= high; low++ {
			t = t.withPair(high, low, false)
			if high != low {
				t = t.withPair(high, low, true)
			}
		}
	}
	return t
}

func cellIndex(high, low card.Rank, suited bool) (a, b card.Rank) {
	if suited {
		return high, low
	}
	return low, high
}

func (t Table) withPair(high, low card.Rank, suited bool) Table {
	a, b := cellIndex(high, low, suited)
	t.rows[a] = t.rows[a].Add(b)
	return t
}

func (t Table) has(high, low card.Rank, suited bool) bool {
	a, b := cellIndex(high, low, suited)
	return t.rows[a].Has(b)
}

// Contains reports whether the table includes the given hand shape. Pairs
// are always non-suited by construction; passing suited=true for high==low
// is a caller error and simply never matches.
func Contains(t Table, high, low card.Rank, suited bool) bool {
	return t.has(high, low, suited)
}

// ContainsHand reports whether the table includes the shape of the two
// given concrete cards.
func (t Table) ContainsHand(a, b card.Card) bool {
	high, low := a.Rank(), b.Rank()
	suited := a.Suit() == b.Suit()
	if low > high {
		high, low = low, high
	}
	if high == low {
		suited = false
	}
	return t.has(high, low, suited)
}

// IsEmpty reports whether the table contains no hands at all.
func (t Table) IsEmpty() bool {
	for _, row := range t.rows {
		if row != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of 13×13 cells set (not concrete hand count).
func (t Table) Count() int {
	n := 0
	for _, row := range t.rows {
		n += row.Count()
	}
	return n
}

// ForEachHand invokes f exactly once for every concrete two-card
// combination consistent with the table: 4 per suited cell, 12 per offsuit
// cell, 6 per paired cell.
func (t Table) ForEachHand(f func(a, b card.Card)) {
	for row := card.Two; row <= card.Ace; row++ {
		remaining := t.rows[row]
		for {
			col, ok := remaining.HighestRank()
			if !ok {
				break
			}
			remaining = remaining.Remove(col)
			suited := row > col

			if suited {
				for s := card.Suit(0); s < card.NumSuits; s++ {
					f(card.NewCard(row, s), card.NewCard(col, s))
				}
				continue
			}

			for sa := card.Suit(0); sa < card.NumSuits; sa++ {
				for sb := sa + 1; sb < card.NumSuits; sb++ {
					f(card.NewCard(row, sa), card.NewCard(col, sb))
					if row != col {
						f(card.NewCard(row, sb), card.NewCard(col, sa))
					}
				}
			}
		}
	}
}

// CountCards returns the total concrete two-card hand count, times two
// (i.e. the total number of individual cards dealt across all hands).
func (t Table) CountCards() int {
	n := 0
	t.ForEachHand(func(a, b card.Card) { n += 2 })
	return n
}

// String renders the table in the same comma-joined form the parser
// accepts, so Parse(t.String()) reconstructs an equivalent table.
func (t Table) String() string {
	var parts []string
	for high := card.Ace; high >= card.Two; high-- {
		if t.has(high, high, false) {
			parts = append(parts, fmt.Sprintf("%s%s", high, high))
		}
	}
	for high := card.Ace; high >= card.Two; high-- {
		for low := high - 1; low >= card.Two; low-- {
			if t.has(high, low, true) {
				parts = append(parts, fmt.Sprintf("%s%ss", high, low))
			}
			if t.has(high, low, false) {
				parts = append(parts, fmt.Sprintf("%s%so", high, low))
			}
		}
	}
	return strings.Join(parts, ",")
}
