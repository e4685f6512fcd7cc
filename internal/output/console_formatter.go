package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/uaetax/tax-calculator/internal/domain"
)

// ConsoleFormatter renders a report as an aligned plain-text breakdown.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	title := strings.ToUpper(report.Title)
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))

	width := 0
	for _, line := range report.Lines {
		if len(line.Label) > width {
			width = len(line.Label)
		}
	}
	if len(report.TotalLabel) > width {
		width = len(report.TotalLabel)
	}

	for _, line := range report.Lines {
		fmt.Fprintf(&buf, "%-*s  %s\n", width, line.Label, FormatCurrency(line.Amount))
	}
	fmt.Fprintln(&buf, strings.Repeat("-", width+2))
	fmt.Fprintf(&buf, "%-*s  %s\n", width, report.TotalLabel, FormatCurrency(report.Total))

	if len(report.Notes) > 0 {
		fmt.Fprintln(&buf)
		for _, note := range report.Notes {
			fmt.Fprintf(&buf, "Note: %s\n", note)
		}
	}
	return buf.Bytes(), nil
}
