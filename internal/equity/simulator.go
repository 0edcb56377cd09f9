package equity

import (
	"fmt"
	"math/rand"

	"github.com/lox/holdem-equity/internal/card"
	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/ranges"
)

// Simulate runs `rounds` Monte-Carlo trials of hero against villainCount
// unconstrained villains (spec §4.7: simulate mode assumes every villain
// plays all remaining hands with no range restriction).
func Simulate(board, hero card.CardSet, villainCount, rounds int, rng *rand.Rand) ([]Equity, error) {
	if hero.Count() != 2 {
		return nil, fmt.Errorf("equity: hero hand must have exactly 2 cards, got %d", hero.Count())
	}
	if board.Count() > 5 {
		return nil, fmt.Errorf("equity: board must have at most 5 cards, got %d", board.Count())
	}
	if board.And(hero) != 0 {
		return nil, fmt.Errorf("equity: hero cards collide with the board")
	}
	if villainCount < 1 || villainCount > 8 {
		return nil, fmt.Errorf("equity: villain count must be in [1,8], got %d", villainCount)
	}

	evaluator.Init()

	n := villainCount + 1
	tallies := make([]Tally, n)
	scratch := make([]evaluator.HandScore, n)
	missing := 5 - board.Count()

	d := deck.FromCards(rng, board.Or(hero))
	for round := 0; round < rounds; round++ {
		d.Reset()

		extra, ok := d.DrawN(rng, missing)
		if !ok {
			break
		}
		boardFull := board
		for _, c := range extra {
			boardFull = boardFull.Add(c)
		}
		scratch[0] = evaluator.Evaluate(boardFull.Or(hero))

		ok = true
		for i := 0; i < villainCount; i++ {
			hand, drew := d.Hand(rng)
			if !drew {
				ok = false
				break
			}
			villainSet := boardFull.Add(hand[0]).Add(hand[1])
			scratch[i+1] = evaluator.Evaluate(villainSet)
		}
		if !ok {
			break
		}
		record(tallies, scratch)
	}

	if tallies[0].Total == 0 {
		return nil, ErrInsufficientData
	}

	out := make([]Equity, n)
	for i, t := range tallies {
		out[i] = t.toEquity()
	}
	return out, nil
}

// SimulateRange runs a range-constrained Monte-Carlo simulation: each round
// draws villain hands uniformly and the whole round is discarded if any
// villain's hand falls outside its declared range (spec §4.7's unbiased
// rejection sampling). The caller should scale rounds up for narrow ranges,
// since the effective sample size is rounds × acceptance rate.
func SimulateRange(board, hero card.CardSet, villains []ranges.Table, rounds int, rng *rand.Rand) ([]Equity, error) {
	if err := validate(board, hero, villains); err != nil {
		return nil, err
	}

	evaluator.Init()

	n := len(villains) + 1
	tallies := make([]Tally, n)
	scratch := make([]evaluator.HandScore, n)
	missing := 5 - board.Count()

	d := deck.FromCards(rng, board.Or(hero))
	hands := make([][2]card.Card, len(villains))

roundLoop:
	for round := 0; round < rounds; round++ {
		d.Reset()

		extra, ok := d.DrawN(rng, missing)
		if !ok {
			break
		}
		boardFull := board
		for _, c := range extra {
			boardFull = boardFull.Add(c)
		}

		for i := range villains {
			hand, drew := d.Hand(rng)
			if !drew {
				break roundLoop
			}
			if !villains[i].ContainsHand(hand[0], hand[1]) {
				continue roundLoop
			}
			hands[i] = hand
		}

		scratch[0] = evaluator.Evaluate(boardFull.Or(hero))
		for i, hand := range hands {
			villainSet := boardFull.Add(hand[0]).Add(hand[1])
			scratch[i+1] = evaluator.Evaluate(villainSet)
		}
		record(tallies, scratch)
	}

	if tallies[0].Total == 0 {
		return nil, ErrInsufficientData
	}

	out := make([]Equity, n)
	for i, t := range tallies {
		out[i] = t.toEquity()
	}
	return out, nil
}
