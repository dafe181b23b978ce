package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		in      string
		birth   []uint8
		survive []uint8
	}{
		{in: "B3/S23", birth: []uint8{3}, survive: []uint8{2, 3}},
		{in: "B1357/S02468", birth: []uint8{1, 3, 5, 7}, survive: []uint8{0, 2, 4, 6, 8}},
		{in: "  B36/S23\n", birth: []uint8{3, 6}, survive: []uint8{2, 3}},
		{in: "B/S", birth: []uint8{}, survive: []uint8{}},
		{in: "B33/S2", birth: []uint8{3, 3}, survive: []uint8{2}},
		{in: "B9/S23", birth: []uint8{9}, survive: []uint8{2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			r, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.birth, r.Birth)
			assert.Equal(t, tc.survive, r.Survive)
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{in: "B3S23", want: ErrInvalidFormat},
		{in: "B3/S2/3", want: ErrInvalidFormat},
		{in: "", want: ErrInvalidFormat},
		{in: "3/S23", want: ErrMissingPrefix},
		{in: "B3/23", want: ErrMissingPrefix},
		{in: "b3/s23", want: ErrMissingPrefix},
		{in: "Bx/S23", want: ErrInvalidDigit},
		{in: "B3/S2y", want: ErrInvalidDigit},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := Parse(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseInvalidDigitCarriesCharacter(t *testing.T) {
	_, err := Parse("Bx/S23")
	var digitErr *InvalidDigitError
	require.True(t, errors.As(err, &digitErr))
	assert.Equal(t, 'x', digitErr.Char)

	_, err = Parse("B3/S2é")
	require.True(t, errors.As(err, &digitErr))
	assert.Equal(t, 'é', digitErr.Char)
}

func TestParsePrefixCheckedBeforeDigits(t *testing.T) {
	_, err := Parse("Bx/23")
	assert.ErrorIs(t, err, ErrMissingPrefix)
}

func TestMembership(t *testing.T) {
	r := MustParse(Conway)
	assert.True(t, r.Born(3))
	assert.False(t, r.Born(2))
	assert.True(t, r.Survives(2))
	assert.True(t, r.Survives(3))
	assert.False(t, r.Survives(4))
	assert.False(t, r.Survives(-1))
}

func TestString(t *testing.T) {
	for _, s := range []string{"B3/S23", "B1357/S02468", "B/S", "B33/S"} {
		assert.Equal(t, s, MustParse(s).String())
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
}
