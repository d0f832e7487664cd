package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferType classifies transfer requests.
type TransferType string

const (
	TransferOrdinary  TransferType = "ORDINARY"
	TransferUrgent    TransferType = "URGENT"
	TransferImmediate TransferType = "IMMEDIATE"
)

// TransferRequest is a validated request to move money between two
// Spanish accounts. Built by transfer.NewRequest; every field has
// passed its per-field check before the value exists.
type TransferRequest struct {
	FromIBAN  string
	ToIBAN    string
	Type      TransferType
	Concept   string
	Date      string // DD/MM/YYYY, as supplied by the caller
	Amount    decimal.Decimal
	Timestamp time.Time // UTC creation time
}
