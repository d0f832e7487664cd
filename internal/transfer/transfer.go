// Package transfer validates transfer requests and records them in a
// duplicate-checked JSON store.
package transfer

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dinero-dev/dinero/internal/iban"
	"github.com/dinero-dev/dinero/internal/model"
)

const (
	conceptMinLen = 10
	conceptMaxLen = 30
	minYear       = 2025
	maxYear       = 2050
	dateFormat    = "02/01/2006" // DD/MM/YYYY
)

var (
	minAmount = decimal.NewFromInt(10)
	maxAmount = decimal.NewFromInt(10000)
	hundred   = decimal.NewFromInt(100)
)

// ValidationError describes a single rejected transfer field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RequestParams holds the caller-supplied fields of a transfer request.
type RequestParams struct {
	FromIBAN string
	ToIBAN   string
	Type     string
	Concept  string
	Date     string // DD/MM/YYYY
	Amount   decimal.Decimal
}

// NewRequest validates params field by field and returns a
// TransferRequest. now anchors the not-in-the-past date check.
func NewRequest(params RequestParams, now time.Time) (model.TransferRequest, error) {
	if err := iban.Validate(params.FromIBAN); err != nil {
		return model.TransferRequest{}, fmt.Errorf("from_iban: %w", err)
	}
	if err := iban.Validate(params.ToIBAN); err != nil {
		return model.TransferRequest{}, fmt.Errorf("to_iban: %w", err)
	}

	typ := model.TransferType(params.Type)
	switch typ {
	case model.TransferOrdinary, model.TransferUrgent, model.TransferImmediate:
	default:
		return model.TransferRequest{}, &ValidationError{
			Field:  "transfer_type",
			Reason: "must be ORDINARY, URGENT or IMMEDIATE",
		}
	}

	if l := len(params.Concept); l < conceptMinLen || l > conceptMaxLen {
		return model.TransferRequest{}, &ValidationError{
			Field:  "concept",
			Reason: fmt.Sprintf("length %d, want %d-%d", l, conceptMinLen, conceptMaxLen),
		}
	}
	if len(strings.Fields(params.Concept)) < 2 {
		return model.TransferRequest{}, &ValidationError{
			Field:  "concept",
			Reason: "must contain at least two words",
		}
	}

	date, err := time.Parse(dateFormat, params.Date)
	if err != nil {
		return model.TransferRequest{}, &ValidationError{
			Field:  "transfer_date",
			Reason: "must be DD/MM/YYYY",
		}
	}
	if y := date.Year(); y < minYear || y > maxYear {
		return model.TransferRequest{}, &ValidationError{
			Field:  "transfer_date",
			Reason: fmt.Sprintf("year %d outside %d-%d", y, minYear, maxYear),
		}
	}
	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return model.TransferRequest{}, &ValidationError{
			Field:  "transfer_date",
			Reason: "cannot be in the past",
		}
	}

	if params.Amount.LessThan(minAmount) || params.Amount.GreaterThan(maxAmount) {
		return model.TransferRequest{}, &ValidationError{
			Field:  "amount",
			Reason: fmt.Sprintf("%s outside %s-%s", params.Amount, minAmount.StringFixed(2), maxAmount.StringFixed(2)),
		}
	}
	cents := params.Amount.Mul(hundred)
	if !cents.Equal(cents.Floor()) {
		return model.TransferRequest{}, &ValidationError{
			Field:  "amount",
			Reason: "more than 2 decimal places",
		}
	}

	return model.TransferRequest{
		FromIBAN: params.FromIBAN,
		ToIBAN:   params.ToIBAN,
		Type:     typ,
		Concept:  params.Concept,
		Date:     params.Date,
		Amount:   params.Amount,
	}, nil
}

// codePayload is the canonical JSON the transfer code is computed over.
// The creation timestamp is deliberately excluded: resubmitting the same
// transfer must yield the same code so the store can catch duplicates.
type codePayload struct {
	FromIBAN string `json:"from_iban"`
	ToIBAN   string `json:"to_iban"`
	Type     string `json:"transfer_type"`
	Amount   string `json:"transfer_amount"`
	Concept  string `json:"transfer_concept"`
	Date     string `json:"transfer_date"`
}

// Code returns the MD5 hex transfer code identifying a request by content.
func Code(r model.TransferRequest) string {
	payload, _ := json.Marshal(codePayload{
		FromIBAN: r.FromIBAN,
		ToIBAN:   r.ToIBAN,
		Type:     string(r.Type),
		Amount:   r.Amount.StringFixed(2),
		Concept:  r.Concept,
		Date:     r.Date,
	})
	sum := md5.Sum(payload)
	return hex.EncodeToString(sum[:])
}
