// Package record parses and serializes the fixed two-field transfer
// record format:
//
//	{"IBAN":"ES9121000418450200051332","AMOUNT":"EUR 150.25"}
//
// The format looks like JSON but is not parsed as JSON: field order,
// labels, quoting and the single space after EUR are all significant,
// and nothing else — no whitespace, no reordering, no extra fields —
// is accepted.
package record

import (
	"github.com/dinero-dev/dinero/internal/amount"
	"github.com/dinero-dev/dinero/internal/iban"
	"github.com/dinero-dev/dinero/internal/model"
)

// Wire-format literals, in the order the parser consumes them.
const (
	openBrace   = "{"
	ibanLabel   = `"IBAN":`
	comma       = ","
	amountLabel = `"AMOUNT":`
	currency    = "EUR " // the space is part of the format
	quote       = `"`
	closeBrace  = "}"
)

// Parse reads a record in the canonical wire format. Any deviation —
// a reordered field, a stray space, a trailing byte — fails with a
// SyntaxError at the first offending byte; a bad IBAN checksum or a
// malformed amount fails with a ValueError at the value's offset.
// A returned Record has passed both leaf validators.
func Parse(input string) (model.Record, error) {
	c := &cursor{input: input}

	if err := c.expect(openBrace + ibanLabel + quote); err != nil {
		return model.Record{}, err
	}

	ibanStart := c.pos
	rawIBAN, err := c.until('"')
	if err != nil {
		return model.Record{}, err
	}
	if err := iban.Validate(rawIBAN); err != nil {
		return model.Record{}, &ValueError{Offset: ibanStart, Err: err}
	}

	if err := c.expect(quote + comma + amountLabel + quote + currency); err != nil {
		return model.Record{}, err
	}

	amountStart := c.pos
	rawAmount, err := c.until('"')
	if err != nil {
		return model.Record{}, err
	}
	amt, err := amount.Validate(rawAmount)
	if err != nil {
		return model.Record{}, &ValueError{Offset: amountStart, Err: err}
	}

	if err := c.expect(quote + closeBrace); err != nil {
		return model.Record{}, err
	}
	if b, ok := c.peek(); ok {
		return model.Record{}, &SyntaxError{Offset: c.pos, Expected: endOfInput, Found: foundByte(b)}
	}

	return model.Record{IBAN: rawIBAN, Amount: amt}, nil
}
