package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryWithBoard(t *testing.T) {
	hero, board, villains, err := parseQuery("AsKs | 2c7d9h | QQ;AKs+")
	require.NoError(t, err)
	assert.Equal(t, 2, hero.Count())
	assert.Equal(t, 3, board.Count())
	assert.Equal(t, []string{"QQ", "AKs+"}, villains)
}

func TestParseQueryWithoutBoard(t *testing.T) {
	hero, board, villains, err := parseQuery("AsAd | QQ")
	require.NoError(t, err)
	assert.Equal(t, 2, hero.Count())
	assert.Equal(t, 0, board.Count())
	assert.Equal(t, []string{"QQ"}, villains)
}

func TestParseQueryRejectsMissingVillains(t *testing.T) {
	_, _, _, err := parseQuery("AsAd")
	assert.Error(t, err)
}

func TestParseQueryRejectsBadHero(t *testing.T) {
	_, _, _, err := parseQuery("Zz | QQ")
	assert.Error(t, err)
}

func TestLabelsIncludesVillainIndex(t *testing.T) {
	got := labels("AsAd | QQ", []string{"QQ"})
	assert.Equal(t, []string{"AsAd", "v1:QQ"}, got)
}
