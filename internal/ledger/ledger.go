// Package ledger computes account balances over the transactions store.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dinero-dev/dinero/internal/amount"
	"github.com/dinero-dev/dinero/internal/iban"
	"github.com/dinero-dev/dinero/internal/model"
)

// ErrIBANNotFound is returned when no transaction references the IBAN.
var ErrIBANNotFound = errors.New("IBAN not found in transactions store")

const currencyPrefix = "EUR "

// storedTransaction mirrors one element of the transactions store;
// amounts stay textual until validated.
type storedTransaction struct {
	IBAN   string `json:"IBAN"`
	Amount string `json:"amount"`
}

// balanceFile is the JSON layout of a written balance record.
type balanceFile struct {
	IBAN      string `json:"IBAN"`
	Timestamp int64  `json:"timestamp"`
	Balance   string `json:"balance"`
}

// Service computes balances over a transactions store and writes
// balance records into an output directory.
type Service struct {
	storePath string
	outDir    string
	now       func() time.Time
}

// NewService creates a ledger Service over the store at storePath,
// writing balance records into outDir.
func NewService(storePath, outDir string) *Service {
	return &Service{storePath: storePath, outDir: outDir, now: time.Now}
}

// Load reads and validates every transaction in the store. Amounts must
// carry the "EUR " prefix and pass the amount shape check.
func (s *Service) Load() ([]model.Transaction, error) {
	data, err := os.ReadFile(s.storePath)
	if err != nil {
		return nil, fmt.Errorf("reading transactions store: %w", err)
	}
	var stored []storedTransaction
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("parsing transactions store: %w", err)
	}

	txs := make([]model.Transaction, 0, len(stored))
	for i, st := range stored {
		amt, err := parseStoredAmount(st.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txs = append(txs, model.Transaction{IBAN: st.IBAN, Amount: amt})
	}
	return txs, nil
}

// Balance validates ibanNumber, sums its transactions with exact decimal
// arithmetic, writes balance_<iban>.json into the output directory, and
// returns the balance record. An IBAN that appears in no transaction is
// an error, not a zero balance.
func (s *Service) Balance(ibanNumber string) (model.BalanceRecord, error) {
	if err := iban.Validate(ibanNumber); err != nil {
		return model.BalanceRecord{}, err
	}

	txs, err := s.Load()
	if err != nil {
		return model.BalanceRecord{}, err
	}

	balance := decimal.Zero
	found := false
	for _, tx := range txs {
		if tx.IBAN == ibanNumber {
			balance = balance.Add(tx.Amount)
			found = true
		}
	}
	if !found {
		return model.BalanceRecord{}, fmt.Errorf("%w: %s", ErrIBANNotFound, ibanNumber)
	}

	rec := model.BalanceRecord{
		IBAN:      ibanNumber,
		Timestamp: s.now().UTC(),
		Balance:   balance,
	}
	if err := s.write(rec); err != nil {
		return model.BalanceRecord{}, err
	}
	return rec, nil
}

func (s *Service) write(rec model.BalanceRecord) error {
	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return fmt.Errorf("creating balances dir: %w", err)
	}
	out := balanceFile{
		IBAN:      rec.IBAN,
		Timestamp: rec.Timestamp.Unix(),
		Balance:   currencyPrefix + rec.Balance.StringFixed(2),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling balance record: %w", err)
	}
	path := filepath.Join(s.outDir, fmt.Sprintf("balance_%s.json", rec.IBAN))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing balance record: %w", err)
	}
	return nil
}

func parseStoredAmount(s string) (decimal.Decimal, error) {
	if !strings.HasPrefix(s, currencyPrefix) {
		return decimal.Zero, fmt.Errorf("amount %q: missing %q prefix", s, currencyPrefix)
	}
	return amount.Validate(strings.TrimPrefix(s, currencyPrefix))
}
