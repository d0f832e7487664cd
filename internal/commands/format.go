package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dinero-dev/dinero/internal/amount"
	"github.com/dinero-dev/dinero/internal/model"
	"github.com/dinero-dev/dinero/internal/record"
)

func newFormatCommand() *cobra.Command {
	var configPath string
	var ibanFlag string
	var amountFlag string

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Serialize an IBAN and amount into the canonical record form",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := amount.Validate(amountFlag)
			if err != nil {
				return err
			}

			text, err := record.Serialize(model.Record{IBAN: ibanFlag, Amount: amt})
			if err != nil {
				return err
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			logOperation(cfg, "format", ibanFlag, amt.StringFixed(2), "")

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "config file")
	cmd.Flags().StringVar(&ibanFlag, "iban", "", "Spanish IBAN (required)")
	cmd.Flags().StringVar(&amountFlag, "amount", "", "amount as digits.dd (required)")
	_ = cmd.MarkFlagRequired("iban")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
