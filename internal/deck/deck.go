// Package deck implements the shuffled residual deck described in spec
// §4.5: a fixed-length array of the cards not already known, drawn from
// uniformly at random without replacement, with a cheap reset that reuses
// the permutation instead of reshuffling.
package deck

import (
	"fmt"
	"math/rand"

	"github.com/lox/holdem-equity/internal/card"
)

// Deck holds the residual (unknown) cards. Cards at index < length are
// live; drawing swaps a chosen card to the end of the live prefix and
// shrinks length, so the already-drawn cards remain in the backing array
// at indices >= length until Reset brings them back into play.
type Deck struct {
	cards  []card.Card
	length int
	maxLen int
}

// FromCards builds the residual deck over the 52-card universe minus
// excluded, shuffled once with rng. maxLen is 52 - popcount(excluded).
func FromCards(rng *rand.Rand, excluded card.CardSet) *Deck {
	cards := make([]card.Card, 0, 52-excluded.Count())
	for s := card.Suit(0); s < card.NumSuits; s++ {
		for r := card.Two; r <= card.Ace; r++ {
			c := card.NewCard(r, s)
			if !excluded.Has(c) {
				cards = append(cards, c)
			}
		}
	}

	d := &Deck{cards: cards, length: len(cards), maxLen: len(cards)}
	d.shuffle(rng)
	return d
}

func (d *Deck) shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns one card, chosen uniformly from the live
// prefix. The drawn card is swapped to the end of the live prefix rather
// than shifted out, so Reset can restore it for free.
func (d *Deck) Draw(rng *rand.Rand) (card.Card, bool) {
	if d.length == 0 {
		return 0, false
	}
	i := rng.Intn(d.length)
	drawn := d.cards[i]
	d.length--
	d.cards[i], d.cards[d.length] = d.cards[d.length], d.cards[i]
	return drawn, true
}

// Hand draws two successive cards.
func (d *Deck) Hand(rng *rand.Rand) ([2]card.Card, bool) {
	var hand [2]card.Card
	for i := range hand {
		c, ok := d.Draw(rng)
		if !ok {
			return hand, false
		}
		hand[i] = c
	}
	return hand, true
}

// DrawN draws n successive cards, or reports false if fewer than n remain.
func (d *Deck) DrawN(rng *rand.Rand, n int) ([]card.Card, bool) {
	if n > d.length {
		return nil, false
	}
	cards := make([]card.Card, n)
	for i := 0; i < n; i++ {
		c, _ := d.Draw(rng)
		cards[i] = c
	}
	return cards, true
}

// Reset restores the live length to maxLen, keeping the current
// permutation. This is cheap and remains uniform: every subsequent Draw
// still samples uniformly over whatever is in the (now full) live prefix.
func (d *Deck) Reset() {
	d.length = d.maxLen
}

// Remaining returns the number of cards still live.
func (d *Deck) Remaining() int {
	return d.length
}

// MaxLen returns 52 minus the number of cards excluded at construction.
func (d *Deck) MaxLen() int {
	return d.maxLen
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck{remaining=%d/%d}", d.length, d.maxLen)
}
