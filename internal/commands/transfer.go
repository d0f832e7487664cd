package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dinero-dev/dinero/internal/transfer"
)

func newTransferCommand() *cobra.Command {
	var configPath string
	var from, to, transferType, concept, date, amountFlag string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Create a validated transfer request and record it in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amountFlag)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amountFlag, err)
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			svc := transfer.NewService(cfg.Stores.Transfers)
			code, err := svc.Request(transfer.RequestParams{
				FromIBAN: from,
				ToIBAN:   to,
				Type:     transferType,
				Concept:  concept,
				Date:     date,
				Amount:   amt,
			})
			if err != nil {
				return err
			}

			logOperation(cfg, "transfer", to, amt.StringFixed(2), code)

			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "config file")
	cmd.Flags().StringVar(&from, "from", "", "sender IBAN (required)")
	cmd.Flags().StringVar(&to, "to", "", "recipient IBAN (required)")
	cmd.Flags().StringVar(&transferType, "type", "ORDINARY", "transfer type: ORDINARY, URGENT or IMMEDIATE")
	cmd.Flags().StringVar(&concept, "concept", "", "transfer concept (required)")
	cmd.Flags().StringVar(&date, "date", "", "transfer date as DD/MM/YYYY (required)")
	cmd.Flags().StringVar(&amountFlag, "amount", "", "transfer amount (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("concept")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
