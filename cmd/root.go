package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uaetax/tax-calculator/internal/calculation"
	"github.com/uaetax/tax-calculator/internal/config"
	"github.com/uaetax/tax-calculator/internal/domain"
	"github.com/uaetax/tax-calculator/internal/output"
)

// Shared flags across the calculator subcommands.
var (
	inputFile  string
	ratesFile  string
	formatName string
	outputFile bool
	verbose    bool
)

// rootCmd is the base command all calculators attach to.
var rootCmd = &cobra.Command{
	Use:   "uaetax",
	Short: "UAE tax calculators: corporate tax, transfer pricing, VAT and excise",
	Long: `uaetax computes UAE tax liabilities from YAML input files: corporate tax
(mainland and free zone QFZP regimes with the de-minimis test), transfer
pricing arm's-length add-backs, VAT positions and excise tax.

All calculators are deterministic: the same input file always produces
the same breakdown.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ratesFile, "rates", "", "rates YAML file (defaults to statutory rates)")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "console", "output format: console, json, csv, xlsx")
	rootCmd.PersistentFlags().BoolVarP(&outputFile, "write", "w", false, "write the report to a timestamped file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadEngine builds the calculation engine, honoring --rates.
func loadEngine() (*calculation.Engine, error) {
	rates := domain.DefaultRates()
	if ratesFile != "" {
		loaded, err := config.NewInputParser().LoadRates(ratesFile)
		if err != nil {
			return nil, err
		}
		rates = loaded
	}
	engine := calculation.NewEngineWithConfig(rates)
	if verbose {
		engine.SetLogger(stderrLogger{})
	}
	return engine, nil
}

// emitReport renders the report with the selected formatter, either to
// stdout or to a timestamped file.
func emitReport(report *domain.Report) error {
	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", formatName, output.AvailableFormatterNames())
	}

	if outputFile {
		filename, err := output.WriteFormatted(formatter, report)
		if err != nil {
			return err
		}
		fmt.Println("Report written to", filename)
		return nil
	}

	if formatter.Name() == "xlsx" {
		return fmt.Errorf("xlsx output requires --write")
	}
	data, err := formatter.Format(report)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// stderrLogger routes engine debug output to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...) }
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any)  { fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...) }
func (stderrLogger) Errorf(format string, args ...any) { fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...) }
