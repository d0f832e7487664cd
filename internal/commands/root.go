// Package commands wires the dinero CLI together.
package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dinero-dev/dinero/internal/buildinfo"
	"github.com/dinero-dev/dinero/internal/config"
	"github.com/dinero-dev/dinero/internal/oplog"
)

// defaultConfigFile is the config file looked up in the working directory.
const defaultConfigFile = "dinero.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dinero",
		Short:   "Spanish IBAN transfer-record tooling",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newDepositCommand())
	rootCmd.AddCommand(newTransferCommand())
	rootCmd.AddCommand(newBalanceCommand())

	return rootCmd
}

// loadConfig reads the given dinero.yaml, falling back to defaults when
// the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// logOperation appends one row to the operations log. Log failures are
// reported but never fail the operation itself.
func logOperation(cfg *config.Config, op, iban, amount, code string) {
	if !cfg.Log.Enabled {
		return
	}
	e := oplog.Entry{
		Timestamp: time.Now().UTC(),
		Operation: op,
		IBAN:      iban,
		Amount:    amount,
		Code:      code,
	}
	if err := oplog.Append(cfg.Log.Path, []oplog.Entry{e}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: operations log: %v\n", err)
	}
}
