package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// ErrDuplicate is returned when a request's code already exists in the store.
var ErrDuplicate = errors.New("duplicate transfer detected")

// StoredTransfer is one element of the transfers.json store.
type StoredTransfer struct {
	FromIBAN  string `json:"from_iban"`
	ToIBAN    string `json:"to_iban"`
	Type      string `json:"transfer_type"`
	Amount    string `json:"transfer_amount"`
	Concept   string `json:"transfer_concept"`
	Date      string `json:"transfer_date"`
	Timestamp int64  `json:"time_stamp"`
	Code      string `json:"transfer_code"`
}

// Service validates transfer requests and appends them to a JSON store.
type Service struct {
	storePath string
	now       func() time.Time
}

// NewService creates a transfer Service backed by the store at storePath.
func NewService(storePath string) *Service {
	return &Service{storePath: storePath, now: time.Now}
}

// Request validates params, rejects duplicates by transfer code, and
// appends the transfer to the store. Returns the transfer code.
func (s *Service) Request(params RequestParams) (string, error) {
	req, err := NewRequest(params, s.now())
	if err != nil {
		return "", err
	}
	req.Timestamp = s.now().UTC()
	code := Code(req)

	transfers, err := s.load()
	if err != nil {
		return "", err
	}
	for _, t := range transfers {
		if t.Code == code {
			return "", fmt.Errorf("%w: %s", ErrDuplicate, code)
		}
	}

	transfers = append(transfers, StoredTransfer{
		FromIBAN:  req.FromIBAN,
		ToIBAN:    req.ToIBAN,
		Type:      string(req.Type),
		Amount:    req.Amount.StringFixed(2),
		Concept:   req.Concept,
		Date:      req.Date,
		Timestamp: req.Timestamp.Unix(),
		Code:      code,
	})
	if err := s.save(transfers); err != nil {
		return "", err
	}
	return code, nil
}

// All returns every transfer in the store, oldest first.
func (s *Service) All() ([]StoredTransfer, error) {
	return s.load()
}

func (s *Service) load() ([]StoredTransfer, error) {
	data, err := os.ReadFile(s.storePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading transfers store: %w", err)
	}
	var transfers []StoredTransfer
	if err := json.Unmarshal(data, &transfers); err != nil {
		return nil, fmt.Errorf("parsing transfers store: %w", err)
	}
	return transfers, nil
}

func (s *Service) save(transfers []StoredTransfer) error {
	data, err := json.MarshalIndent(transfers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling transfers store: %w", err)
	}
	if err := os.WriteFile(s.storePath, data, 0o644); err != nil {
		return fmt.Errorf("writing transfers store: %w", err)
	}
	return nil
}
