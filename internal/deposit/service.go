package deposit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dinero-dev/dinero/internal/model"
	"github.com/dinero-dev/dinero/internal/record"
)

// Receipt is the JSON receipt written for a completed deposit.
type Receipt struct {
	Alg       string `json:"alg"`
	Type      string `json:"type"`
	ToIBAN    string `json:"to_iban"`
	Amount    string `json:"deposit_amount"`
	Date      int64  `json:"deposit_date"`
	Signature string `json:"deposit_signature"`
}

// Service creates deposits from record files and writes their receipts.
type Service struct {
	receiptsDir string
	now         func() time.Time
}

// NewService creates a deposit Service writing receipts into receiptsDir.
func NewService(receiptsDir string) *Service {
	return &Service{receiptsDir: receiptsDir, now: time.Now}
}

// FromFile reads a record file in the wire format, validates it, writes
// a signed receipt, and returns the deposit and its signature.
func (s *Service) FromFile(path string) (model.Deposit, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Deposit{}, "", fmt.Errorf("reading record file: %w", err)
	}
	rec, err := record.Parse(string(data))
	if err != nil {
		return model.Deposit{}, "", fmt.Errorf("parsing %s: %w", path, err)
	}
	return s.Create(rec)
}

// Create builds a dated deposit from a validated record and writes its
// receipt. Returns the deposit and its signature.
func (s *Service) Create(rec model.Record) (model.Deposit, string, error) {
	d := model.Deposit{
		ToIBAN: rec.IBAN,
		Amount: rec.Amount,
		Date:   s.now().UTC(),
	}
	sig := Signature(d)

	receipt := Receipt{
		Alg:       alg,
		Type:      typ,
		ToIBAN:    d.ToIBAN,
		Amount:    "EUR " + d.Amount.StringFixed(2),
		Date:      d.Date.Unix(),
		Signature: sig,
	}

	if err := os.MkdirAll(s.receiptsDir, 0o755); err != nil {
		return model.Deposit{}, "", fmt.Errorf("creating receipts dir: %w", err)
	}
	data, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return model.Deposit{}, "", fmt.Errorf("marshaling receipt: %w", err)
	}
	path := filepath.Join(s.receiptsDir, ReceiptName(d))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return model.Deposit{}, "", fmt.Errorf("writing receipt: %w", err)
	}
	return d, sig, nil
}
