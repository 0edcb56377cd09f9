package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardSetInvariantSubsetOfMaskFull(t *testing.T) {
	cs, err := FromSlice(mustParseCards(t, "AsKsQhJdTc"))
	require.NoError(t, err)
	assert.Equal(t, cs, cs&MaskFull)
	assert.Equal(t, 5, cs.Count())
}

func TestCardSetAddRemoveHas(t *testing.T) {
	var cs CardSet
	ac := NewCard(Ace, Clubs)
	cs = cs.Add(ac)
	assert.True(t, cs.Has(ac))
	cs = cs.Remove(ac)
	assert.False(t, cs.Has(ac))
}

func TestCardSetWithPanicsOnDuplicate(t *testing.T) {
	ac := NewCard(Ace, Clubs)
	cs := CardSet(0).With(ac)
	assert.Panics(t, func() { cs.With(ac) })
}

func TestCardSetFromSliceDuplicate(t *testing.T) {
	_, err := FromSlice([]Card{NewCard(Ace, Clubs), NewCard(Ace, Clubs)})
	assert.Error(t, err)
}

func TestCardSetByRank(t *testing.T) {
	cs, err := FromSlice(mustParseCards(t, "AsAhKd"))
	require.NoError(t, err)
	rs := cs.ByRank()
	assert.True(t, rs.Has(Ace))
	assert.True(t, rs.Has(King))
	assert.Equal(t, 2, rs.Count())
}

func TestCardSetSuitLane(t *testing.T) {
	cs, err := FromSlice(mustParseCards(t, "AsKsQhJd"))
	require.NoError(t, err)
	spades := cs.SuitLane(Spades)
	assert.True(t, spades.Has(Ace))
	assert.True(t, spades.Has(King))
	assert.Equal(t, 2, spades.Count())
}

func TestCardSetOfRank(t *testing.T) {
	aces := OfRank(Ace)
	assert.Equal(t, 4, aces.Count())
	for s := Suit(0); s < NumSuits; s++ {
		assert.True(t, aces.Has(NewCard(Ace, s)))
	}
}

func TestCardSetNotMasksToFull(t *testing.T) {
	assert.Equal(t, MaskFull, CardSet(0).Not())
	assert.Equal(t, CardSet(0), MaskFull.Not())
}

func TestCardSetIterDescending(t *testing.T) {
	cs, err := FromSlice(mustParseCards(t, "2cAs7d"))
	require.NoError(t, err)
	cards := cs.Iter()
	require.Len(t, cards, 3)
	for i := 1; i < len(cards); i++ {
		assert.Greater(t, int(cards[i-1]), int(cards[i]))
	}
}

func mustParseCards(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	require.NoError(t, err)
	return cards
}
