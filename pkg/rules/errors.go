package rules

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates the rule does not contain exactly one '/'.
	ErrInvalidFormat = errors.New("rules: invalid format, expected B<digits>/S<digits>")
	// ErrMissingPrefix indicates the birth part lacks 'B' or the survival part lacks 'S'.
	ErrMissingPrefix = errors.New("rules: missing B or S prefix")
	// ErrInvalidDigit matches any InvalidDigitError via errors.Is.
	ErrInvalidDigit = errors.New("rules: invalid digit")
)

// InvalidDigitError reports the first non-digit character found in a rule part.
type InvalidDigitError struct {
	Char rune
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("rules: invalid digit %q", e.Char)
}

// Is lets errors.Is(err, ErrInvalidDigit) match regardless of the character.
func (e *InvalidDigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}
