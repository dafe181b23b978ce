// Package rules parses birth/survival rule strings such as "B3/S23".
package rules

import (
	"slices"
	"strings"
)

// Conway is the rule string for Conway's Game of Life.
const Conway = "B3/S23"

// RuleSet holds the neighbor counts that give birth to a dead cell and the
// counts that keep a live cell alive. Entries keep input order and may repeat.
type RuleSet struct {
	Birth   []uint8
	Survive []uint8
}

// Parse converts a rule string into a RuleSet.
//
// The input is trimmed and split on '/'. Exactly two parts are required, the
// first prefixed with 'B' and the second with 'S'. Every remaining character
// must be a decimal digit. Digits are not bounded by the neighborhood size, so
// "B9/S23" parses even though a birth on 9 neighbors can never happen.
func Parse(s string) (RuleSet, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return RuleSet{}, ErrInvalidFormat
	}

	birthPart, ok := strings.CutPrefix(parts[0], "B")
	if !ok {
		return RuleSet{}, ErrMissingPrefix
	}
	survivePart, ok := strings.CutPrefix(parts[1], "S")
	if !ok {
		return RuleSet{}, ErrMissingPrefix
	}

	birth, err := parseDigits(birthPart)
	if err != nil {
		return RuleSet{}, err
	}
	survive, err := parseDigits(survivePart)
	if err != nil {
		return RuleSet{}, err
	}
	return RuleSet{Birth: birth, Survive: survive}, nil
}

// MustParse is like Parse but panics on error. Intended for constants in tests
// and package-level defaults.
func MustParse(s string) RuleSet {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseDigits(s string) ([]uint8, error) {
	out := make([]uint8, 0, len(s))
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, &InvalidDigitError{Char: c}
		}
		out = append(out, uint8(c-'0'))
	}
	return out, nil
}

// Born reports whether a dead cell with n live neighbors becomes alive.
func (r RuleSet) Born(n int) bool { return contains(r.Birth, n) }

// Survives reports whether a live cell with n live neighbors stays alive.
func (r RuleSet) Survives(n int) bool { return contains(r.Survive, n) }

func contains(set []uint8, n int) bool {
	if n < 0 || n > 255 {
		return false
	}
	return slices.Contains(set, uint8(n))
}

// String renders the rule back in B/S notation, preserving digit order.
func (r RuleSet) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, d := range r.Birth {
		b.WriteByte('0' + d)
	}
	b.WriteString("/S")
	for _, d := range r.Survive {
		b.WriteByte('0' + d)
	}
	return b.String()
}
