package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dinero-dev/dinero/internal/record"
)

func newParseCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse and validate a transfer record (file or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) > 0 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			rec, err := record.Parse(string(data))
			if err != nil {
				return err
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			logOperation(cfg, "parse", rec.IBAN, rec.Amount.StringFixed(2), "")

			fmt.Fprintf(cmd.OutOrStdout(), "IBAN:   %s\nAMOUNT: EUR %s\n", rec.IBAN, rec.Amount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "config file")

	return cmd
}
