package output

import (
	"fmt"

	"github.com/uaetax/tax-calculator/internal/domain"
)

// Report builders translate each engine's result struct into the labeled
// line-item form the formatters consume. Builders never recompute
// anything; they only relabel.

// BuildCorporateReport renders a corporate tax result as a report.
func BuildCorporateReport(result *domain.CorporateTaxResult, deMinimis *domain.DeMinimisResult) *domain.Report {
	r := &domain.Report{
		Title:      "Corporate Tax Liability",
		Calculator: "corporate-tax",
		TotalLabel: "Corporate Tax Payable",
		Total:      result.TotalTax,
	}

	if b := result.Breakdown; b != nil {
		r.AddLine("Accounting Profit Before Tax", b.ProfitBeforeTax)
		r.AddLine("Entertainment Add-Back (50%)", b.EntertainmentAddBack)
		r.AddLine("Fines and Penalties Add-Back", b.FinesAddBack)
		r.AddLine("Non-Qualifying Donations Add-Back", b.DonationsAddBack)
		r.AddLine("Other Disallowed Expenses Add-Back", b.OtherAddBack)
		r.AddLine("Transfer Pricing Upward Adjustment", b.TPUpwardAdjustment)
		r.AddLine("Disallowed Interest Add-Back", b.InterestDisallowed)
		r.AddLine("Total Add-Backs", b.TotalAddBacks)
		r.AddLine("Less: Exempt Income", b.ExemptIncome.Neg())
		r.AddLine("Taxable Income Before Loss Relief", b.TaxableBeforeLoss)
		r.AddLine("Maximum Loss Utilisation (75%)", b.MaxLossUtilisation)
		r.AddLine("Less: Loss Utilised", b.LossUtilised.Neg())
		r.AddLine("Taxable Income", b.TaxableIncome)
	}
	if s := result.Standard; s != nil {
		r.AddLine("Taxable at 0%", s.TaxableAtZeroRate)
		r.AddLine("Tax at 0%", s.TaxAtZeroRate)
		r.AddLine("Taxable at 9%", s.TaxableAtStandardRate)
		r.AddLine("Tax at 9%", s.TaxAtStandardRate)
	}
	if q := result.QFZP; q != nil {
		r.AddLine("Non-Qualifying Income", q.NonQualifyingIncome)
		r.AddLine("Tax at 9% on Non-Qualifying Income", q.TotalTax)
		r.AddNote("Qualifying income is taxed at 0% and is not separately charged.")
	}
	if deMinimis != nil {
		r.AddLine("Free Zone Total Revenue", deMinimis.TotalRevenue)
		r.AddLine("5% of Total Revenue", deMinimis.FivePercentOfRevenue)
		r.AddLine("De-Minimis Threshold", deMinimis.Threshold)
		r.AddLine("Non-Qualifying Revenue", deMinimis.NonQualifyingRevenue)
		if deMinimis.Met {
			r.AddNote("De-minimis test met: non-qualifying revenue is within the threshold.")
		}
	}
	r.AddNote(result.Note)
	return r
}

// BuildDeMinimisReport renders a standalone de-minimis test outcome.
func BuildDeMinimisReport(result domain.DeMinimisResult) *domain.Report {
	r := &domain.Report{
		Title:      "Free Zone De-Minimis Test",
		Calculator: "de-minimis",
		TotalLabel: "De-Minimis Threshold",
		Total:      result.Threshold,
	}
	r.AddLine("Total Revenue", result.TotalRevenue)
	r.AddLine("5% of Total Revenue", result.FivePercentOfRevenue)
	r.AddLine("Absolute Cap", result.AbsoluteCap)
	r.AddLine("Non-Qualifying Revenue", result.NonQualifyingRevenue)
	if result.Met {
		r.AddNote("Result: MET. QFZP status is retained.")
	} else {
		r.AddNote("Result: BREACHED. The standard corporate tax regime applies.")
	}
	return r
}

// BuildTransferPricingReport renders a transfer pricing result.
func BuildTransferPricingReport(result *domain.TransferPricingResult) *domain.Report {
	r := &domain.Report{
		Title:      "Transfer Pricing Adjustment",
		Calculator: "transfer-pricing",
		TotalLabel: "Incremental Corporate Tax Impact",
		Total:      result.CTImpact,
	}
	for i, row := range result.Rows {
		label := row.Description
		if label == "" {
			label = fmt.Sprintf("Transaction %d (%s)", i+1, row.Type)
		}
		r.AddLine(label+" Add-Back", row.AddBack)
	}
	r.AddLine("Total Arm's-Length Add-Back", result.TotalAddBack)
	r.AddNote(result.Note)
	r.AddNote("Downward adjustments require FTA pre-approval and are not computed.")
	return r
}

// BuildVATReport renders a VAT position result.
func BuildVATReport(result *domain.VATResult) *domain.Report {
	r := &domain.Report{
		Title:      "VAT Position",
		Calculator: "vat",
		TotalLabel: "Net VAT Payable",
		Total:      result.PayableToFTA,
	}
	r.AddLine("Output VAT on Standard-Rated Sales", result.OutputVATOnSales)
	r.AddLine("Reverse Charge Output VAT", result.ReverseChargeOutputVAT)
	r.AddLine("Total Output VAT", result.TotalOutputVAT)
	r.AddLine("Recoverable Input VAT on Expenses", result.InputVATOnExpenses)
	r.AddLine("Reverse Charge Input VAT", result.ReverseChargeInputVAT)
	r.AddLine("Total Input VAT", result.TotalInputVAT)
	r.AddLine("Net Position", result.NetPosition)
	if result.Refundable.IsPositive() {
		r.AddLine("Refundable", result.Refundable)
		r.TotalLabel = "Net VAT Refundable"
		r.Total = result.Refundable
	}
	r.AddLine("Taxable Turnover", result.TaxableTurnover)
	if result.RegistrationRequired {
		r.AddNote("Taxable turnover exceeds AED 375,000: VAT registration is mandatory.")
	} else if result.VoluntaryEligible {
		r.AddNote("Taxable turnover exceeds AED 187,500: voluntary VAT registration is available.")
	}
	return r
}

// BuildExciseReport renders an excise result.
func BuildExciseReport(result *domain.ExciseResult) *domain.Report {
	r := &domain.Report{
		Title:      "Excise Tax",
		Calculator: "excise",
		TotalLabel: "Total Excise Due",
		Total:      result.TotalExciseDue,
	}
	for i, line := range result.Lines {
		label := line.Description
		if label == "" {
			label = fmt.Sprintf("Item %d (%s)", i+1, line.Category)
		}
		r.AddLine(fmt.Sprintf("%s Excise at %s", label, FormatPercentage(line.Rate)), line.ExciseDue)
	}
	r.AddLine("Total Taxable Base", result.TotalBase)
	r.AddLine("Total Including Excise", result.TotalWithExcise)
	return r
}
