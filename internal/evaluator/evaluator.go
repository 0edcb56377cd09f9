package evaluator

import "github.com/lox/holdem-equity/internal/card"

// Evaluate classifies any 5-, 6-, or 7-card CardSet into the best 5-card
// HandScore achievable from it, per the layered strategy in spec §4.3:
// flush pre-check, straight-flush attempt on a flush suit, rank-multiset
// table lookup for the non-flush score, and a final reconciliation between
// the two. Panics if Init has not been called first.
func Evaluate(cs card.CardSet) HandScore {
	nonFlush := lookup(keyFromCardSet(cs))

	flushSuit, hasFlush := findFlushSuit(cs)
	if !hasFlush {
		return nonFlush
	}

	if run, ok := cs.SuitLane(flushSuit).Straight(); ok {
		high, _ := run.HighestRank()
		return newScore(StraightFlush, high)
	}

	// Four of a kind and full house always outrank a flush, so a
	// non-flush score at or above FullHouse wins even though a flush
	// exists. Anything below that loses to the flush itself.
	if nonFlush.Category() >= FullHouse {
		return nonFlush
	}
	return flushScore(cs.SuitLane(flushSuit))
}

// findFlushSuit returns the suit holding 5 or more of cs's cards, if any.
// At most one suit can qualify from a 7-card input.
func findFlushSuit(cs card.CardSet) (card.Suit, bool) {
	for s := card.Suit(0); s < card.NumSuits; s++ {
		if cs.SuitLane(s).Count() >= 5 {
			return s, true
		}
	}
	return 0, false
}

// flushScore builds the Flush HandScore from a suit lane holding 5 or more
// ranks, keeping only the top 5 as kickers.
func flushScore(lane card.RankSet) HandScore {
	var top []card.Rank
	for r := card.Ace; r >= card.Two && len(top) < 5; r-- {
		if lane.Has(r) {
			top = append(top, r)
		}
	}
	return newScore(Flush, top...)
}
