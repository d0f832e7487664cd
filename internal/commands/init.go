package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dinero-dev/dinero/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new dinero project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir)
		},
	}

	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	cfg := config.Default()

	dirs := []string{
		cfg.Stores.Receipts,
		cfg.Stores.Balances,
		filepath.Dir(cfg.Log.Path),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, defaultConfigFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Empty JSON stores so the first deposit/transfer has something to
	// append to.
	empty := []byte("[]\n")
	if err := os.WriteFile(filepath.Join(dir, cfg.Stores.Transactions), empty, 0o644); err != nil {
		return fmt.Errorf("writing transactions store: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, cfg.Stores.Transfers), empty, 0o644); err != nil {
		return fmt.Errorf("writing transfers store: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized dinero project at %s\n", dir)
	return nil
}
