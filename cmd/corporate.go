package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uaetax/tax-calculator/internal/config"
	"github.com/uaetax/tax-calculator/internal/output"
)

// corporateCmd computes a corporate tax liability from an input file.
var corporateCmd = &cobra.Command{
	Use:   "corporate",
	Short: "Compute a UAE corporate tax liability",
	Long: `Computes taxable income and corporate tax payable from an input YAML file.

The regime field selects the computation path: mainland / non_qfzp use
the two-tier standard regime (0% up to AED 375,000, 9% above); qfzp runs
the free-zone de-minimis test first and applies 9% to non-qualifying
income when the test is met, falling back to the standard regime when it
is breached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		in, err := config.NewInputParser().LoadCorporateInput(inputFile)
		if err != nil {
			return err
		}

		result, deMinimis, err := engine.CalculateCorporate(in.Regime, in.Inputs)
		if err != nil {
			return err
		}
		return emitReport(output.BuildCorporateReport(result, deMinimis))
	},
}

// deMinimisCmd runs only the free-zone de-minimis test.
var deMinimisCmd = &cobra.Command{
	Use:   "de-minimis",
	Short: "Run the free-zone de-minimis test on its own",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		in, err := config.NewInputParser().LoadCorporateInput(inputFile)
		if err != nil {
			return err
		}

		result, err := engine.Corporate.ComputeDeMinimis(in.Inputs)
		if err != nil {
			return err
		}
		return emitReport(output.BuildDeMinimisReport(result))
	},
}

func init() {
	corporateCmd.Flags().StringVarP(&inputFile, "input", "i", "corporate.yaml", "input YAML file")
	deMinimisCmd.Flags().StringVarP(&inputFile, "input", "i", "corporate.yaml", "input YAML file")
	corporateCmd.AddCommand(deMinimisCmd)
	rootCmd.AddCommand(corporateCmd)
}
