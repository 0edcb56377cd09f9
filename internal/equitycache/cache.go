// Package equitycache memoizes equity queries: repeated requests for the
// same (board, hero, villain ranges) triple are common in an interactive
// explorer and are expensive to recompute by full enumeration.
package equitycache

import (
	"strings"

	lru "github.com/opencoff/golang-lru"

	"github.com/lox/holdem-equity/internal/card"
	"github.com/lox/holdem-equity/internal/equity"
)

// Cache memoizes Enumerate results keyed by the textual form of a query.
// Board and hero are keyed by their canonical CardSet.String() form, so the
// order in which the caller spelled those cards does not matter; villain
// range strings are keyed exactly as given, so differently spelled but
// equivalent ranges are separate entries.
type Cache struct {
	lru *lru.Cache
}

// New creates a cache holding up to size entries.
func New(size int) (*Cache, error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

func key(board, hero card.CardSet, villainSpecs []string) string {
	var b strings.Builder
	b.WriteString(board.String())
	b.WriteByte('|')
	b.WriteString(hero.String())
	for _, v := range villainSpecs {
		b.WriteByte('|')
		b.WriteString(v)
	}
	return b.String()
}

// Get returns a previously stored result for the given query, if present.
func (c *Cache) Get(board, hero card.CardSet, villainSpecs []string) ([]equity.Equity, bool) {
	v, ok := c.lru.Get(key(board, hero, villainSpecs))
	if !ok {
		return nil, false
	}
	return v.([]equity.Equity), true
}

// Put stores a result for the given query, evicting the least recently used
// entry if the cache is full.
func (c *Cache) Put(board, hero card.CardSet, villainSpecs []string, result []equity.Equity) {
	c.lru.Add(key(board, hero, villainSpecs), result)
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}
