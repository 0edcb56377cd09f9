package equity

import "github.com/lox/holdem-equity/internal/evaluator"

// showdown finds the maximum score among scores and returns the indices
// holding it: a single index is an outright win, two or more share a tie.
func showdown(scores []evaluator.HandScore) []int {
	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}
	winners := make([]int, 0, 1)
	for i, s := range scores {
		if s == best {
			winners = append(winners, i)
		}
	}
	return winners
}

// record updates tallies in place for one showdown's outcome: every player
// gets Total incremented, the outright winner (if any) gets Wins
// incremented, and tied players split a 1/k share of Ties.
func record(tallies []Tally, scores []evaluator.HandScore) {
	winners := showdown(scores)
	for i := range tallies {
		tallies[i].Total++
	}
	if len(winners) == 1 {
		tallies[winners[0]].Wins++
		return
	}
	share := 1.0 / float64(len(winners))
	for _, i := range winners {
		tallies[i].Ties += share
	}
}
