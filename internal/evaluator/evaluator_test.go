package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/internal/card"
)

func init() {
	Init()
}

func evalString(t *testing.T, s string) HandScore {
	t.Helper()
	cards, err := card.ParseCards(s)
	require.NoError(t, err)
	cs, err := card.FromSlice(cards)
	require.NoError(t, err)
	return Evaluate(cs)
}

func TestEvaluateCategoryOrdering(t *testing.T) {
	tests := []struct {
		cards    string
		expected Category
	}{
		{"AsKsQsJsTs9h8h", StraightFlush},
		{"9s8s7s6s5s4h3h", StraightFlush},
		{"AsAhAdAcKs2h3h", FourOfAKind},
		{"AsAhAdKsKh2h3h", FullHouse},
		{"AsKsQs9s7s4h3h", Flush},
		{"AsKhQdJsTs9h8h", Straight},
		{"AsAhAdKsQh2h3h", ThreeOfAKind},
		{"AsAhKdKsQh2h3h", TwoPair},
		{"AsAhKdQs9h2h3h", OnePair},
		{"AsKhQd9s7c5h3h", HighCard},
	}
	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			score := evalString(t, tt.cards)
			assert.Equal(t, tt.expected, score.Category())
		})
	}
}

func TestEvaluateRoyalFlush(t *testing.T) {
	score := evalString(t, "AsKsQsJsTs9h8h")
	assert.True(t, score.IsRoyalFlush())
	assert.Equal(t, "Royal Flush", score.String())
}

func TestEvaluateMonotonicCategoryOrder(t *testing.T) {
	royal := evalString(t, "AsKsQsJsTs9h8h")
	quads := evalString(t, "AsAhAdAcKs2h3h")
	high := evalString(t, "AsKhQd9s7c5h3h")

	assert.Equal(t, 1, royal.Compare(quads))
	assert.Equal(t, 1, quads.Compare(high))
	assert.Equal(t, 0, royal.Compare(royal))
}

// TestEvaluateSixHighStraightNotWheel is spec scenario 4.
func TestEvaluateSixHighStraightNotWheel(t *testing.T) {
	score := evalString(t, "As2s3h4d5c6cKh")
	assert.Equal(t, Straight, score.Category())
	assert.Equal(t, card.Six, Rank(score))
}

// TestEvaluateFlushBeatsStraight is spec scenario 5.
func TestEvaluateFlushBeatsStraight(t *testing.T) {
	hero := evalString(t, "2s5s9sTsKdAsKs")
	villain := evalString(t, "2s5s9sTsKdQcJh")
	assert.Greater(t, int(hero), int(villain))
}

// Rank extracts the top kicker nibble from a score for assertions.
func Rank(s HandScore) card.Rank {
	return card.Rank((s >> 24) & 0xF)
}

// TestEvaluateWheelRanksBelowSixHigh is spec scenario 4's counterpart: the
// wheel (A-2-3-4-5) must score as a Five-high straight, below any higher
// straight, rather than an Ace-high straight that would beat them all.
func TestEvaluateWheelRanksBelowSixHigh(t *testing.T) {
	wheel := evalString(t, "As2s3h4d5cKhQh")
	assert.Equal(t, Straight, wheel.Category())
	assert.Equal(t, card.Five, Rank(wheel))

	sixHigh := evalString(t, "2s3h4d5c6cKhQh")
	assert.Equal(t, Straight, sixHigh.Category())
	assert.Greater(t, int(sixHigh), int(wheel))
}

func TestScoreFromCountsAgreesWithTableAcrossSampleHands(t *testing.T) {
	// Cross-check the table lookup path (keyFromCardSet + lookup) against
	// scoreFromCounts applied to directly counted ranks, on a fixed set of
	// hands built to avoid flush so the two must agree exactly.
	hands := []string{
		"2c3d4h5s9cTcJc",
		"AcAdKhKsQc2d3h",
		"AcAdAhKsQc2d3h",
		"2c2d2h2s9cTcJc",
	}
	for _, h := range hands {
		cards, err := card.ParseCards(h)
		require.NoError(t, err)
		cs, err := card.FromSlice(cards)
		require.NoError(t, err)

		var counts [13]int
		for _, c := range cards {
			counts[c.Rank()]++
		}
		assert.Equal(t, scoreFromCounts(counts), lookup(keyFromCardSet(cs)))
	}
}
