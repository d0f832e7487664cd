package record

import (
	"github.com/shopspring/decimal"

	"github.com/dinero-dev/dinero/internal/amount"
	"github.com/dinero-dev/dinero/internal/iban"
	"github.com/dinero-dev/dinero/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Serialize emits r in the canonical wire format. The record is
// re-validated first: a Record assembled by hand with a bad checksum,
// a negative amount, or an amount that cannot be written as
// Digit+ "." Digit{2} is rejected rather than serialized into text
// Parse would refuse.
func Serialize(r model.Record) (string, error) {
	if err := iban.Validate(r.IBAN); err != nil {
		return "", err
	}

	// StringFixed(2) rounds; reject sub-cent amounts before they are
	// silently reshaped.
	cents := r.Amount.Mul(hundred)
	if !cents.Equal(cents.Floor()) {
		return "", &amount.Error{Kind: amount.WrongFractionDigitCount, Input: r.Amount.String()}
	}

	text := r.Amount.StringFixed(2)
	if _, err := amount.Validate(text); err != nil {
		return "", err
	}

	return openBrace + ibanLabel + quote + r.IBAN + quote + comma +
		amountLabel + quote + currency + text + quote + closeBrace, nil
}
