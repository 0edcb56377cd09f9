package ranges

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-equity/internal/card"
)

// Parse parses a comma-separated range string per spec §4.4's grammar:
// XX, XX+, XYs, XYs+, XYo, XYo+. No spaces are accepted; ranks are the
// strict "23456789TJQKA" alphabet.
func Parse(s string) (Table, error) {
	t := Empty()
	for _, def := range strings.Split(s, ",") {
		if err := parseEntry(&t, def); err != nil {
			return Table{}, fmt.Errorf("ranges: invalid range %q: invalid entry %q: %w", s, def, err)
		}
	}
	return t, nil
}

func parseEntry(t *Table, def string) error {
	b := []byte(def)
	switch {
	case len(b) == 2:
		if b[0] != b[1] {
			return fmt.Errorf("parsing failed")
		}
		return addPair(t, b[0])
	case len(b) == 3 && b[2] == '+' && b[0] == b[1]:
		return addPairsAsc(t, b[0])
	case len(b) == 3 && b[2] == 'o':
		return addOne(t, b[0], b[1], false)
	case len(b) == 3 && b[2] == 's':
		return addOne(t, b[0], b[1], true)
	case len(b) == 4 && b[2] == 'o' && b[3] == '+':
		return addAsc(t, b[0], b[1], false)
	case len(b) == 4 && b[2] == 's' && b[3] == '+':
		return addAsc(t, b[0], b[1], true)
	default:
		return fmt.Errorf("parsing failed")
	}
}

func addPair(t *Table, rawRank byte) error {
	r, err := card.ParseRank(rawRank)
	if err != nil {
		return err
	}
	return tryAdd(t, r, r, false)
}

func addPairsAsc(t *Table, rawRank byte) error {
	from, err := card.ParseRank(rawRank)
	if err != nil {
		return err
	}
	for r := from; r <= card.Ace; r++ {
		if err := tryAdd(t, r, r, false); err != nil {
			return err
		}
	}
	return nil
}

func addOne(t *Table, rawHigh, rawLow byte, suited bool) error {
	high, low, err := parseHighLow(rawHigh, rawLow)
	if err != nil {
		return err
	}
	return tryAdd(t, high, low, suited)
}

func addAsc(t *Table, rawHigh, rawLow byte, suited bool) error {
	high, low, err := parseHighLow(rawHigh, rawLow)
	if err != nil {
		return err
	}
	for r := low; r < high; r++ {
		if err := tryAdd(t, high, r, suited); err != nil {
			return err
		}
	}
	return nil
}

func parseHighLow(rawHigh, rawLow byte) (high, low card.Rank, err error) {
	high, err = card.ParseRank(rawHigh)
	if err != nil {
		return 0, 0, err
	}
	low, err = card.ParseRank(rawLow)
	if err != nil {
		return 0, 0, err
	}
	if low >= high {
		return 0, 0, fmt.Errorf("low rank must be strictly less than high rank")
	}
	return high, low, nil
}

func tryAdd(t *Table, high, low card.Rank, suited bool) error {
	if t.has(high, low, suited) {
		return fmt.Errorf("duplicate entry %s%s%s", high, low, suitedChar(suited))
	}
	*t = t.withPair(high, low, suited)
	return nil
}

func suitedChar(suited bool) string {
	if suited {
		return "s"
	}
	return "o"
}
