package output

import (
	"bytes"
	"encoding/csv"

	"github.com/uaetax/tax-calculator/internal/domain"
)

// CSVFormatter writes the report as one CSV row per line item.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Line", "Amount (AED)"}); err != nil {
		return nil, err
	}
	for _, line := range report.Lines {
		if err := w.Write([]string{line.Label, line.Amount.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{report.TotalLabel, report.Total.StringFixed(2)}); err != nil {
		return nil, err
	}
	for _, note := range report.Notes {
		if err := w.Write([]string{"Note", note}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
