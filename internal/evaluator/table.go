package evaluator

import (
	"sync"

	"github.com/lox/holdem-equity/internal/card"
)

// scoreFromCounts classifies a rank-count multiset (index = Rank, value =
// how many of the four suits hold that rank, summing to 5, 6, or 7) into
// the best non-flush 5-card HandScore achievable from it. This ignores
// suits entirely — flush and straight-flush are detected separately, from
// the per-suit lanes, in evaluator.go — and the caller reconciles the two
// views: a flush outranks anything this function reports below FullHouse,
// while its FourOfAKind and FullHouse scores outrank a flush.
func scoreFromCounts(counts [13]int) HandScore {
	type rankCount struct {
		rank  card.Rank
		count int
	}

	var present []rankCount
	for r := card.Ace; r >= card.Two; r-- {
		if counts[r] > 0 {
			present = append(present, rankCount{r, counts[r]})
		}
	}

	var quads, trips, pairs []card.Rank
	for _, e := range present {
		switch e.count {
		case 4:
			quads = append(quads, e.rank)
		case 3:
			trips = append(trips, e.rank)
		case 2:
			pairs = append(pairs, e.rank)
		}
	}

	// kickers returns up to n ranks, highest first, skipping any rank in
	// exclude. It draws from present's natural descending order rather
	// than from a specific count-group, so a rank already used as part
	// of a pair or trip can still supply a single kicker card once its
	// group membership no longer accounts for all of it.
	kickers := func(exclude []card.Rank, n int) []card.Rank {
		excl := make(map[card.Rank]bool, len(exclude))
		for _, r := range exclude {
			excl[r] = true
		}
		out := make([]card.Rank, 0, n)
		for _, e := range present {
			if excl[e.rank] {
				continue
			}
			out = append(out, e.rank)
			if len(out) == n {
				break
			}
		}
		return out
	}

	switch {
	case len(quads) > 0:
		k := kickers(quads, 1)
		return newScore(FourOfAKind, append([]card.Rank{quads[0]}, k...)...)
	case len(trips) >= 2:
		return newScore(FullHouse, trips[0], trips[1])
	case len(trips) == 1 && len(pairs) >= 1:
		return newScore(FullHouse, trips[0], pairs[0])
	case len(trips) == 1:
		k := kickers(trips, 2)
		return newScore(ThreeOfAKind, append([]card.Rank{trips[0]}, k...)...)
	case len(pairs) >= 2:
		k := kickers(pairs[:2], 1)
		return newScore(TwoPair, append([]card.Rank{pairs[0], pairs[1]}, k...)...)
	case len(pairs) == 1:
		k := kickers(pairs, 3)
		return newScore(OnePair, append([]card.Rank{pairs[0]}, k...)...)
	}

	var rs card.RankSet
	for _, e := range present {
		rs = rs.Add(e.rank)
	}
	if run, ok := rs.Straight(); ok {
		high, _ := run.HighestRank()
		return newScore(Straight, high)
	}

	return newScore(HighCard, kickers(nil, 5)...)
}

// packKey packs a rank-count multiset into the canonical table key: each
// rank's count (0..4) occupies a 4-bit nibble.
func packKey(counts [13]int) uint64 {
	var key uint64
	for r := 0; r < card.NumRanks; r++ {
		key |= uint64(counts[r]) << (4 * r)
	}
	return key
}

// expandLane spreads a 13-bit suit lane into the same nibble layout packKey
// uses, with each present rank contributing exactly 1 to its nibble. This
// is the textbook version of the interleave-by-four bit trick: summing
// expandLane across the four suit lanes of a CardSet accumulates per-rank
// counts directly into the packed key, with no nibble ever overflowing
// since at most four suits can hold a given rank.
func expandLane(lane card.RankSet) uint64 {
	var out uint64
	for r := 0; r < card.NumRanks; r++ {
		if lane.Has(card.Rank(r)) {
			out |= 1 << (4 * r)
		}
	}
	return out
}

// keyFromCardSet derives the packed rank-count key directly from a CardSet,
// without ever materializing a [13]int.
func keyFromCardSet(cs card.CardSet) uint64 {
	var key uint64
	for s := card.Suit(0); s < card.NumSuits; s++ {
		key += expandLane(cs.SuitLane(s))
	}
	return key
}

// generateKeys enumerates every packed key reachable by a rank-count
// multiset over 13 ranks, each count in 0..4, summing to 5, 6, or 7 — the
// full domain scoreFromCounts (and hence the table) must cover.
func generateKeys() []uint64 {
	var keys []uint64
	var counts [13]int

	var recurse func(rank, sum int)
	recurse = func(rank, sum int) {
		if rank == card.NumRanks {
			if sum >= 5 && sum <= 7 {
				keys = append(keys, packKey(counts))
			}
			return
		}
		maxRemaining := (card.NumRanks - rank - 1) * 4
		for c := 0; c <= 4; c++ {
			if sum+c > 7+maxRemaining {
				break
			}
			counts[rank] = c
			recurse(rank+1, sum+c)
		}
		counts[rank] = 0
	}
	recurse(0, 0)
	return keys
}

// table is the process-wide rank-multiset → HandScore lookup described in
// spec §4.3/§4.9/§9: built exactly once, read-only and safe for concurrent
// use afterward. A plain map is the correct structure here — the key
// space is sparse and built once at startup, and a map lookup is already
// O(1); a perfect-hash layer in front of it would add a dependency and a
// build step without changing the asymptotics.
type table map[uint64]HandScore

var (
	globalTable     table
	globalTableOnce sync.Once
)

// Init builds the global score table. It is safe to call concurrently and
// more than once; only the first call does any work. Evaluate panics if
// called before Init has returned at least once.
func Init() {
	globalTableOnce.Do(func() {
		globalTable = buildTable()
	})
}

func buildTable() table {
	keys := generateKeys()

	t := make(table, len(keys))
	for _, k := range keys {
		if _, ok := t[k]; ok {
			continue
		}
		var counts [13]int
		for r := 0; r < card.NumRanks; r++ {
			counts[r] = int((k >> (4 * r)) & 0xF)
		}
		t[k] = scoreFromCounts(counts)
	}
	return t
}

// lookup returns the non-flush HandScore for a packed rank-count key.
// Panics if Init has not been called, per spec §4.9's Uninitialized state
// being undefined behavior by contract.
func lookup(key uint64) HandScore {
	if globalTable == nil {
		panic("evaluator: score table read before Init")
	}
	return globalTable[key]
}
