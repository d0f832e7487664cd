package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deposit is a dated deposit into an account, derived from a parsed Record.
type Deposit struct {
	ToIBAN string
	Amount decimal.Decimal
	Date   time.Time // UTC creation time, baked into the signature
}
