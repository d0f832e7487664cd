package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dinero-dev/dinero/internal/ledger"
)

func newBalanceCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "balance <iban>",
		Short: "Calculate the balance for an IBAN from the transactions store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			svc := ledger.NewService(cfg.Stores.Transactions, cfg.Stores.Balances)
			rec, err := svc.Balance(args[0])
			if err != nil {
				return err
			}

			logOperation(cfg, "balance", rec.IBAN, rec.Balance.StringFixed(2), "")

			fmt.Fprintf(cmd.OutOrStdout(), "EUR %s\n", rec.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "config file")

	return cmd
}
