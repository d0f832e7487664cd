// Package iban validates Spanish IBANs: the "ES" country code, two check
// digits and a 20-digit account number, checked with the standard mod-97
// procedure.
package iban

import (
	"fmt"
	"strconv"
)

// Length is the fixed size of a Spanish IBAN.
const Length = 24

// FormatError reports an input that does not have the Spanish IBAN shape.
type FormatError struct {
	IBAN   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid IBAN format %q: %s", e.IBAN, e.Reason)
}

// ChecksumError reports a well-formed IBAN whose mod-97 check fails.
type ChecksumError struct {
	IBAN      string
	Remainder int
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("invalid IBAN checksum for %q: mod-97 remainder %d, want 1", e.IBAN, e.Remainder)
}

// Validate checks that s is a checksum-valid Spanish IBAN. The check is
// pure arithmetic over the string; whether the account exists at any
// bank is not this function's business.
func Validate(s string) error {
	if len(s) != Length {
		return &FormatError{IBAN: s, Reason: fmt.Sprintf("length %d, want %d", len(s), Length)}
	}
	if s[:2] != "ES" {
		return &FormatError{IBAN: s, Reason: "country code must be ES"}
	}
	for i := 2; i < Length; i++ {
		if s[i] < '0' || s[i] > '9' {
			return &FormatError{IBAN: s, Reason: fmt.Sprintf("non-digit %q at position %d", s[i], i)}
		}
	}
	if rem := mod97(s[4:] + s[:4]); rem != 1 {
		return &ChecksumError{IBAN: s, Remainder: rem}
	}
	return nil
}

// mod97 reduces a rearranged IBAN modulo 97. Letters expand to their
// two-digit values (A=10 .. Z=35), then the digit string is folded nine
// digits at a time with the running remainder carried forward, so the
// intermediate value never leaves int64 range.
func mod97(s string) int {
	var digits []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			digits = append(digits, []byte(strconv.Itoa(int(c-'A')+10))...)
		} else {
			digits = append(digits, c)
		}
	}

	rem := 0
	for i := 0; i < len(digits); i += 9 {
		end := i + 9
		if end > len(digits) {
			end = len(digits)
		}
		chunk := strconv.Itoa(rem) + string(digits[i:end])
		n, _ := strconv.ParseInt(chunk, 10, 64)
		rem = int(n % 97)
	}
	return rem
}
