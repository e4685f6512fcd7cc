package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uaetax/tax-calculator/internal/config"
	"github.com/uaetax/tax-calculator/internal/output"
)

// transferPricingCmd computes arm's-length add-backs from an input file.
var transferPricingCmd = &cobra.Command{
	Use:     "transfer-pricing",
	Aliases: []string{"tp"},
	Short:   "Compute transfer pricing arm's-length add-backs",
	Long: `Evaluates each related-party transaction against its arm's-length
benchmark and totals the mandatory upward adjustments. Expenses priced
above arm's length and income priced below it produce add-backs; the
incremental corporate tax impact is 9% of the total.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		in, err := config.NewInputParser().LoadTransferPricingInput(inputFile)
		if err != nil {
			return err
		}

		result, err := engine.TransferPricing.Compute(*in)
		if err != nil {
			return err
		}
		return emitReport(output.BuildTransferPricingReport(result))
	},
}

func init() {
	transferPricingCmd.Flags().StringVarP(&inputFile, "input", "i", "transfer_pricing.yaml", "input YAML file")
	rootCmd.AddCommand(transferPricingCmd)
}
