package domain

import (
	"github.com/shopspring/decimal"
)

// ReportLine is one labeled amount in a calculation breakdown.
type ReportLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Report is the formatter-facing view of any engine result: a titled list
// of labeled line items plus a final payable amount.
type Report struct {
	Title      string          `json:"title"`
	Calculator string          `json:"calculator"`
	Lines      []ReportLine    `json:"lines"`
	TotalLabel string          `json:"total_label"`
	Total      decimal.Decimal `json:"total"`
	Notes      []string        `json:"notes,omitempty"`
}

// AddLine appends a labeled amount to the report.
func (r *Report) AddLine(label string, amount decimal.Decimal) {
	r.Lines = append(r.Lines, ReportLine{Label: label, Amount: amount})
}

// AddNote appends an advisory note to the report.
func (r *Report) AddNote(note string) {
	if note != "" {
		r.Notes = append(r.Notes, note)
	}
}
