package equity

import (
	"fmt"
	"math/big"

	"github.com/lox/holdem-equity/internal/ranges"
)

// errCapacityTemplate formats the error checkCapacity returns when the
// pre-flight combinatorial bound exceeds what a uint64 can count, per spec
// §4.6/§7. The enumerator never starts in that case.
var errCapacityTemplate = "equity: enumeration upper bound %s exceeds uint64 capacity"

// totalCombosUpperBound computes a conservative (over-)estimate of the
// number of (board completion, villain hand assignment) tuples the
// enumerator could visit, ignoring card-collision exclusion entirely, per
// spec §4.6. Two independent bounds are computed and the tighter one kept:
// one from multiplying in each range's concrete card count, one from
// treating every villain's two cards as unconstrained draws from the
// remaining deck.
func totalCombosUpperBound(communityCount int, villains []ranges.Table) *big.Int {
	remaining := big.NewInt(int64(52 - communityCount - 2))

	count := big.NewInt(1)
	for i := communityCount; i < 5; i++ {
		count.Mul(count, remaining)
		remaining.Sub(remaining, big.NewInt(1))
	}

	maxCount := new(big.Int).Set(count)
	for i := 0; i < len(villains)*2; i++ {
		maxCount.Mul(maxCount, remaining)
		remaining.Sub(remaining, big.NewInt(1))
	}

	for _, r := range villains {
		count.Mul(count, big.NewInt(int64(r.CountCards())))
	}

	if count.Cmp(maxCount) < 0 {
		return count
	}
	return maxCount
}

// checkCapacity returns an error built from errCapacityTemplate if the
// upper bound does not fit in a uint64.
func checkCapacity(communityCount int, villains []ranges.Table) error {
	bound := totalCombosUpperBound(communityCount, villains)
	if !bound.IsUint64() {
		return fmt.Errorf(errCapacityTemplate, bound.String())
	}
	return nil
}
