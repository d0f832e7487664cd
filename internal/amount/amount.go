// Package amount validates monetary amount strings against the shape
// Digit+ "." Digit{2} and converts them to exact decimals.
package amount

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FractionDigits is the required number of digits after the dot.
const FractionDigits = 2

// Kind identifies the first shape violation found in an amount string.
type Kind string

const (
	EmptyIntegerPart        Kind = "empty integer part"
	MissingDot              Kind = "missing dot"
	WrongFractionDigitCount Kind = "wrong fraction digit count"
	NonDigitCharacter       Kind = "non-digit character"
)

// Error describes why an amount string was rejected.
type Error struct {
	Kind  Kind
	Input string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid amount %q: %s", e.Input, e.Kind)
}

// Validate checks s against Digit+ "." Digit{2} and returns its exact
// decimal value. Scanning is left to right and stops at the first
// violation. Leading zeros in the integer part are lexically valid and
// accepted as-is.
func Validate(s string) (decimal.Decimal, error) {
	if len(s) == 0 {
		return decimal.Zero, &Error{Kind: EmptyIntegerPart, Input: s}
	}

	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		if s[0] == '.' {
			return decimal.Zero, &Error{Kind: EmptyIntegerPart, Input: s}
		}
		return decimal.Zero, &Error{Kind: NonDigitCharacter, Input: s}
	}
	if i == len(s) {
		return decimal.Zero, &Error{Kind: MissingDot, Input: s}
	}
	if s[i] != '.' {
		return decimal.Zero, &Error{Kind: NonDigitCharacter, Input: s}
	}

	frac := s[i+1:]
	for j := 0; j < len(frac); j++ {
		if !isDigit(frac[j]) {
			return decimal.Zero, &Error{Kind: NonDigitCharacter, Input: s}
		}
	}
	if len(frac) != FractionDigits {
		return decimal.Zero, &Error{Kind: WrongFractionDigitCount, Input: s}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &Error{Kind: NonDigitCharacter, Input: s}
	}
	return d, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
