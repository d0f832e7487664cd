package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one validated row of the transactions store.
type Transaction struct {
	IBAN   string
	Amount decimal.Decimal
}

// BalanceRecord is the result of a balance calculation over the store.
type BalanceRecord struct {
	IBAN      string
	Timestamp time.Time
	Balance   decimal.Decimal
}
