package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinero-dev/dinero/internal/commands"
	"github.com/dinero-dev/dinero/internal/config"
)

func runDinero(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// testConfig writes a dinero.yaml whose stores and log all live inside dir,
// so commands never touch the working directory.
func testConfig(t *testing.T, dir string) string {
	t.Helper()
	cfg := config.Default()
	cfg.Stores.Transactions = filepath.Join(dir, "transactions.json")
	cfg.Stores.Transfers = filepath.Join(dir, "transfers.json")
	cfg.Stores.Receipts = filepath.Join(dir, "receipts")
	cfg.Stores.Balances = filepath.Join(dir, "balances")
	cfg.Log.Path = filepath.Join(dir, "logs", "operations.csv")

	path := filepath.Join(dir, "dinero.yaml")
	require.NoError(t, config.Save(path, cfg))
	return path
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, err := runDinero(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized dinero project")

	for _, f := range []string{"dinero.yaml", "transactions.json", "transfers.json"} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, "missing %s", f)
	}
	for _, d := range []string{"receipts", "balances", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "missing %s", d)
		assert.True(t, info.IsDir())
	}
}

func TestParse_File(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testConfig(t, dir)

	recordPath := filepath.Join(dir, "record.txt")
	text := `{"IBAN":"ES9121000418450200051332","AMOUNT":"EUR 150.25"}`
	require.NoError(t, os.WriteFile(recordPath, []byte(text), 0o644))

	out, err := runDinero(t, "parse", recordPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "ES9121000418450200051332")
	assert.Contains(t, out, "EUR 150.25")
}

func TestParse_Invalid(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testConfig(t, dir)

	recordPath := filepath.Join(dir, "record.txt")
	require.NoError(t, os.WriteFile(recordPath, []byte(`{"IBAN": "nope"}`), 0o644))

	_, err := runDinero(t, "parse", recordPath, "--config", cfgPath)
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testConfig(t, dir)

	out, err := runDinero(t, "format",
		"--iban", "ES9121000418450200051332",
		"--amount", "150.25",
		"--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `{"IBAN":"ES9121000418450200051332","AMOUNT":"EUR 150.25"}`)
}

func TestFormat_BadChecksum(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testConfig(t, dir)

	_, err := runDinero(t, "format",
		"--iban", "ES0021000418450200051332",
		"--amount", "150.25",
		"--config", cfgPath)
	assert.Error(t, err)
}

func TestDeposit(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testConfig(t, dir)

	recordPath := filepath.Join(dir, "record.txt")
	text := `{"IBAN":"ES9121000418450200051332","AMOUNT":"EUR 150.25"}`
	require.NoError(t, os.WriteFile(recordPath, []byte(text), 0o644))

	out, err := runDinero(t, "deposit", recordPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Regexp(t, "^[0-9a-f]{64}\n$", out, "output should be the hex signature")

	entries, err := os.ReadDir(filepath.Join(dir, "receipts"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTransfer_AndDuplicate(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testConfig(t, dir)

	args := []string{"transfer",
		"--from", "ES9121000418450200051332",
		"--to", "ES8200000000000000000000",
		"--concept", "Payment for services",
		"--date", "15/06/2049",
		"--amount", "150.75",
		"--config", cfgPath}

	out, err := runDinero(t, args...)
	require.NoError(t, err)
	assert.Regexp(t, "^[0-9a-f]{32}\n$", out, "output should be the transfer code")

	_, err = runDinero(t, args...)
	require.Error(t, err, "second identical transfer is a duplicate")
}

func TestBalance(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testConfig(t, dir)

	store := `[
  {"IBAN": "ES9121000418450200051332", "amount": "EUR 100.50"},
  {"IBAN": "ES9121000418450200051332", "amount": "EUR 49.75"}
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.json"), []byte(store), 0o644))

	out, err := runDinero(t, "balance", "ES9121000418450200051332", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "EUR 150.25")

	_, err = os.Stat(filepath.Join(dir, "balances", "balance_ES9121000418450200051332.json"))
	assert.NoError(t, err, "balance record should be written")
}

func TestBalance_NotFound(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testConfig(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.json"), []byte("[]"), 0o644))

	_, err := runDinero(t, "balance", "ES9121000418450200051332", "--config", cfgPath)
	assert.Error(t, err)
}

func TestOperationsLogged(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testConfig(t, dir)

	out, err := runDinero(t, "format",
		"--iban", "ES9121000418450200051332",
		"--amount", "10.00",
		"--config", cfgPath)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	data, err := os.ReadFile(filepath.Join(dir, "logs", "operations.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "format")
	assert.Contains(t, string(data), "ES9121000418450200051332")
}
