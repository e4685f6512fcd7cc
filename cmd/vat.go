package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uaetax/tax-calculator/internal/config"
	"github.com/uaetax/tax-calculator/internal/output"
)

// vatCmd computes a per-period VAT position from an input file.
var vatCmd = &cobra.Command{
	Use:   "vat",
	Short: "Compute a UAE VAT position",
	Long: `Computes output VAT, recoverable input VAT and the net payable or
refundable position for a return period, and checks taxable turnover
against the registration thresholds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		in, err := config.NewInputParser().LoadVATInput(inputFile)
		if err != nil {
			return err
		}

		result, err := engine.VAT.Compute(*in)
		if err != nil {
			return err
		}
		return emitReport(output.BuildVATReport(result))
	},
}

func init() {
	vatCmd.Flags().StringVarP(&inputFile, "input", "i", "vat.yaml", "input YAML file")
	rootCmd.AddCommand(vatCmd)
}
