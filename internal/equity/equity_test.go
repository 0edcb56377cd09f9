package equity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/internal/card"
	"github.com/lox/holdem-equity/internal/ranges"
)

func mustCards(t *testing.T, s string) card.CardSet {
	t.Helper()
	if s == "" {
		return 0
	}
	cs, err := card.ParseCards(s)
	require.NoError(t, err)
	set := card.CardSet(0)
	for _, c := range cs {
		set = set.Add(c)
	}
	return set
}

func mustRange(t *testing.T, s string) ranges.Table {
	t.Helper()
	tbl, err := ranges.Parse(s)
	require.NoError(t, err)
	return tbl
}

// scenario: a royal flush on the board plays for both players, 50/50 split.
func TestEnumerateRoyalFlushOnBoardSplits(t *testing.T) {
	board := mustCards(t, "AsKsQsJsTs")
	hero := mustCards(t, "2c2d")
	villain := mustRange(t, "33")

	out, err := Enumerate(board, hero, []ranges.Table{villain})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, 0.5, out[0].EquityFraction(), 1e-9)
	assert.InDelta(t, 0.5, out[1].EquityFraction(), 1e-9)
}

// scenario: hero's quads on the flop are an unbeatable lock regardless of
// the turn and river cards, even when villain's full house could itself
// improve to quad deuces.
func TestEnumerateQuadsAreALock(t *testing.T) {
	board := mustCards(t, "7h7d2c")
	hero := mustCards(t, "7s7c")
	villain := mustRange(t, "22")

	out, err := Enumerate(board, hero, []ranges.Table{villain})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out[0].EquityFraction(), 1e-9)
	assert.InDelta(t, 0.0, out[1].EquityFraction(), 1e-9)
}

// scenario: the AK-vs-QQ "coin flip" matchup on a 2c7d9h flop, where hero
// needs an ace or king on the turn or river: roughly a one-in-four shot.
func TestEnumerateCoinFlipAKvsQQ(t *testing.T) {
	board := mustCards(t, "2c7d9h")
	hero := mustCards(t, "AsKs")
	villain := mustRange(t, "QQ")

	out, err := Enumerate(board, hero, []ranges.Table{villain})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, out[0].EquityFraction(), 0.20)
	assert.LessOrEqual(t, out[0].EquityFraction(), 0.35)
}

// scenario: flush beats straight outright.
func TestEnumerateFlushDominatesStraight(t *testing.T) {
	board := mustCards(t, "2s5s9sTsKd")
	hero := mustCards(t, "AsKs")
	villain := mustRange(t, "QJo")

	out, err := Enumerate(board, hero, []ranges.Table{villain})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out[0].EquityFraction(), 1e-9)
}

func TestEnumerateAndEnumerateParallelAgree(t *testing.T) {
	board := mustCards(t, "2c7d9h")
	hero := mustCards(t, "AsKs")
	villain := mustRange(t, "QQ")

	seq, err := Enumerate(board, hero, []ranges.Table{villain})
	require.NoError(t, err)
	par, err := EnumerateParallel(board, hero, []ranges.Table{villain})
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		assert.InDelta(t, seq[i].EquityFraction(), par[i].EquityFraction(), 1e-9)
	}
}

func TestEnumerateTotalsSumAcrossPlayers(t *testing.T) {
	board := mustCards(t, "2c7d9h")
	hero := mustCards(t, "AsKs")
	villain := mustRange(t, "QQ")

	out, err := Enumerate(board, hero, []ranges.Table{villain})
	require.NoError(t, err)

	sum := 0.0
	for _, e := range out {
		sum += e.EquityFraction()
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

// scenario: simulator converges to roughly 85.2% for AA vs a random hand.
func TestSimulateAAvsRandomConverges(t *testing.T) {
	hero := mustCards(t, "AsAd")
	rng := rand.New(rand.NewSource(1))

	out, err := Simulate(0, hero, 1, 200000, rng)
	require.NoError(t, err)
	assert.InDelta(t, 0.852, out[0].EquityFraction(), 0.03)
}

func TestSimulateRangeRejectsOutOfRangeHands(t *testing.T) {
	board := mustCards(t, "2c7d9h")
	hero := mustCards(t, "AsKs")
	villain := mustRange(t, "QQ")
	rng := rand.New(rand.NewSource(7))

	out, err := SimulateRange(board, hero, []ranges.Table{villain}, 20000, rng)
	require.NoError(t, err)
	assert.InDelta(t, 0.27, out[0].EquityFraction(), 0.07)
}

func TestValidateRejectsWrongHeroCount(t *testing.T) {
	villain := mustRange(t, "QQ")
	_, err := Enumerate(0, mustCards(t, "As"), []ranges.Table{villain})
	assert.Error(t, err)
}

func TestValidateRejectsOverlappingHeroAndBoard(t *testing.T) {
	villain := mustRange(t, "QQ")
	board := mustCards(t, "AsKs2c")
	_, err := Enumerate(board, mustCards(t, "AsKd"), []ranges.Table{villain})
	assert.Error(t, err)
}

func TestCheckCapacityRejectsHugeFields(t *testing.T) {
	villains := make([]ranges.Table, 8)
	for i := range villains {
		villains[i] = ranges.Full()
	}
	err := checkCapacity(0, villains)
	assert.Error(t, err)
}
