package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankSetStraightSixHighNotWheel(t *testing.T) {
	// spec scenario 4: As2s + 3h4d5c6cKh must report a six-high straight.
	var rs RankSet
	for _, r := range []Rank{Ace, Two, Three, Four, Five, Six, King} {
		rs = rs.Add(r)
	}
	run, ok := rs.Straight()
	assert.True(t, ok)
	high, ok := run.HighestRank()
	assert.True(t, ok)
	assert.Equal(t, Six, high)
}

func TestRankSetStraightWheel(t *testing.T) {
	var rs RankSet
	for _, r := range []Rank{Ace, Two, Three, Four, Five} {
		rs = rs.Add(r)
	}
	run, ok := rs.Straight()
	assert.True(t, ok)
	high, ok := run.HighestRank()
	assert.True(t, ok)
	assert.Equal(t, Five, high)
}

func TestRankSetStraightAceHigh(t *testing.T) {
	var rs RankSet
	for _, r := range []Rank{Ten, Jack, Queen, King, Ace} {
		rs = rs.Add(r)
	}
	run, ok := rs.Straight()
	assert.True(t, ok)
	high, ok := run.HighestRank()
	assert.True(t, ok)
	assert.Equal(t, Ace, high)
}

func TestRankSetNoStraight(t *testing.T) {
	var rs RankSet
	for _, r := range []Rank{Two, Three, Four, Five, Seven} {
		rs = rs.Add(r)
	}
	_, ok := rs.Straight()
	assert.False(t, ok)
}

func TestRankSetHighestRankEmpty(t *testing.T) {
	_, ok := RankSet(0).HighestRank()
	assert.False(t, ok)
}
