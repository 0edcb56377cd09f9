package card

import "math/bits"

// RankSet is a subset of the thirteen ranks, stored as a 13-bit mask with
// bit i set iff rank i is a member.
type RankSet uint16

// MaskAllRanks is the universe of all thirteen ranks.
const MaskAllRanks RankSet = (1 << NumRanks) - 1

// wheelMask is the five-rank straight Ace-2-3-4-5, the lowest straight and
// the one exception to "five consecutive bits" since Ace plays low here.
const wheelMask RankSet = 1<<Ace | 1<<Two | 1<<Three | 1<<Four | 1<<Five

// wheelRun is what Straight reports for the wheel: Five through Two, with
// the Ace bit deliberately left out so HighestRank yields Five, the
// wheel's true scoring high card, rather than Ace.
const wheelRun RankSet = 1<<Five | 1<<Four | 1<<Three | 1<<Two

// Add returns the set with rank r added.
func (rs RankSet) Add(r Rank) RankSet {
	return rs | 1<<r
}

// Remove returns the set with rank r removed.
func (rs RankSet) Remove(r Rank) RankSet {
	return rs &^ (1 << r)
}

// Has reports whether rank r is a member.
func (rs RankSet) Has(r Rank) bool {
	return rs&(1<<r) != 0
}

// Count returns the number of member ranks.
func (rs RankSet) Count() int {
	return bits.OnesCount16(uint16(rs))
}

// HighestRank returns the highest member rank, or false if the set is empty.
func (rs RankSet) HighestRank() (Rank, bool) {
	if rs == 0 {
		return 0, false
	}
	return Rank(15 - bits.LeadingZeros16(uint16(rs))), true
}

// Straight returns the highest straight contained in the set: the five
// consecutive ranks forming it (for the wheel, wheelRun: Two through Five
// without the Ace), and true. The wheel (Ace-2-3-4-5) is
// considered lower than every other straight and is only reported when no
// run of five consecutive ranks exists elsewhere in the set.
func (rs RankSet) Straight() (RankSet, bool) {
	for high := Ace; high >= Six; high-- {
		run := RankSet(0x1F) << (high - 4)
		if rs&run == run {
			return run, true
		}
	}
	if rs&wheelMask == wheelMask {
		return wheelRun, true
	}
	return 0, false
}
