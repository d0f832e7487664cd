package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinero-dev/dinero/internal/iban"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func writeStore(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "transactions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testService(t *testing.T, storeContent string) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	store := writeStore(t, dir, storeContent)
	outDir := filepath.Join(dir, "balances")
	svc := NewService(store, outDir)
	svc.now = func() time.Time { return testNow }
	return svc, outDir
}

const sampleStore = `[
  {"IBAN": "ES9121000418450200051332", "amount": "EUR 100.50"},
  {"IBAN": "ES8200000000000000000000", "amount": "EUR 10.00"},
  {"IBAN": "ES9121000418450200051332", "amount": "EUR 49.75"}
]`

func TestLoad(t *testing.T) {
	svc, _ := testService(t, sampleStore)

	txs, err := svc.Load()
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, "ES9121000418450200051332", txs[0].IBAN)
	assert.True(t, txs[0].Amount.Equal(dec("100.50")))
}

func TestLoad_BadAmount(t *testing.T) {
	svc, _ := testService(t, `[{"IBAN": "ES9121000418450200051332", "amount": "EUR 10.5"}]`)

	_, err := svc.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction 0")
}

func TestLoad_MissingCurrencyPrefix(t *testing.T) {
	svc, _ := testService(t, `[{"IBAN": "ES9121000418450200051332", "amount": "100.50"}]`)

	_, err := svc.Load()
	assert.Error(t, err)
}

func TestBalance(t *testing.T) {
	svc, outDir := testService(t, sampleStore)

	rec, err := svc.Balance("ES9121000418450200051332")
	require.NoError(t, err)
	assert.True(t, rec.Balance.Equal(dec("150.25")), "balance: got %s", rec.Balance)
	assert.Equal(t, testNow, rec.Timestamp)

	// The balance record is written as balance_<iban>.json.
	data, err := os.ReadFile(filepath.Join(outDir, "balance_ES9121000418450200051332.json"))
	require.NoError(t, err)

	var out struct {
		IBAN      string `json:"IBAN"`
		Timestamp int64  `json:"timestamp"`
		Balance   string `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "ES9121000418450200051332", out.IBAN)
	assert.Equal(t, testNow.Unix(), out.Timestamp)
	assert.Equal(t, "EUR 150.25", out.Balance)
}

func TestBalance_ExactArithmetic(t *testing.T) {
	svc, _ := testService(t, `[
  {"IBAN": "ES8200000000000000000000", "amount": "EUR 0.10"},
  {"IBAN": "ES8200000000000000000000", "amount": "EUR 0.20"}
]`)

	rec, err := svc.Balance("ES8200000000000000000000")
	require.NoError(t, err)
	assert.True(t, rec.Balance.Equal(dec("0.30")), "0.10+0.20 should be exactly 0.30, got %s", rec.Balance)
}

func TestBalance_IBANNotFound(t *testing.T) {
	svc, _ := testService(t, sampleStore)

	_, err := svc.Balance("ES5500000000000000000001")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIBANNotFound)
}

func TestBalance_InvalidIBAN(t *testing.T) {
	svc, _ := testService(t, sampleStore)

	_, err := svc.Balance("ES0021000418450200051332")
	require.Error(t, err)

	var checksumErr *iban.ChecksumError
	assert.ErrorAs(t, err, &checksumErr)
}

func TestBalance_MissingStore(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "nope.json"), t.TempDir())

	_, err := svc.Balance("ES9121000418450200051332")
	assert.Error(t, err)
}

func TestBalance_CorruptStore(t *testing.T) {
	svc, _ := testService(t, "not json at all")

	_, err := svc.Balance("ES9121000418450200051332")
	assert.Error(t, err)
}
