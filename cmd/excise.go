package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uaetax/tax-calculator/internal/config"
	"github.com/uaetax/tax-calculator/internal/output"
)

// exciseCmd computes excise tax from an input file.
var exciseCmd = &cobra.Command{
	Use:   "excise",
	Short: "Compute UAE excise tax",
	Long: `Computes ad valorem excise tax per product line: 100% on tobacco,
e-smoking products and energy drinks, 50% on carbonated and sweetened
drinks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		in, err := config.NewInputParser().LoadExciseInput(inputFile)
		if err != nil {
			return err
		}

		result, err := engine.Excise.Compute(*in)
		if err != nil {
			return err
		}
		return emitReport(output.BuildExciseReport(result))
	},
}

func init() {
	exciseCmd.Flags().StringVarP(&inputFile, "input", "i", "excise.yaml", "input YAML file")
	rootCmd.AddCommand(exciseCmd)
}
