package model

import (
	"github.com/shopspring/decimal"
)

// Record is a validated IBAN/amount pair, the unit of the wire format.
// Records are only produced by code paths that ran both the IBAN
// checksum and the amount shape checks; there is no partially-valid
// Record.
type Record struct {
	IBAN   string          // "ES" + 22 digits
	Amount decimal.Decimal // EUR, non-negative, two fraction digits
}

// Equal reports structural equality. Decimals with different exponents
// can represent the same value, so Amount is compared numerically.
func (r Record) Equal(other Record) bool {
	return r.IBAN == other.IBAN && r.Amount.Equal(other.Amount)
}
