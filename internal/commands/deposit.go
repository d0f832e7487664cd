package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dinero-dev/dinero/internal/deposit"
)

func newDepositCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "deposit <record-file>",
		Short: "Process a deposit from a record file and write a signed receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			svc := deposit.NewService(cfg.Stores.Receipts)
			d, sig, err := svc.FromFile(args[0])
			if err != nil {
				return err
			}

			logOperation(cfg, "deposit", d.ToIBAN, d.Amount.StringFixed(2), sig)

			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "config file")

	return cmd
}
