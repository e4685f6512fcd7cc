package domain

import (
	"github.com/shopspring/decimal"
)

// VATInput holds the per-period VAT return figures. Nil means not yet
// entered, consistent with the other calculators.
type VATInput struct {
	StandardRatedSales    *decimal.Decimal `yaml:"standard_rated_sales" json:"standard_rated_sales"`
	ZeroRatedSales        *decimal.Decimal `yaml:"zero_rated_sales" json:"zero_rated_sales"`
	ExemptSales           *decimal.Decimal `yaml:"exempt_sales" json:"exempt_sales"`
	StandardRatedExpenses *decimal.Decimal `yaml:"standard_rated_expenses" json:"standard_rated_expenses"`
	ReverseChargeImports  *decimal.Decimal `yaml:"reverse_charge_imports" json:"reverse_charge_imports"`
}

// VATFieldLabels are the labels surfaced in missing-field messages.
var VATFieldLabels = struct {
	StandardRatedSales, ZeroRatedSales, ExemptSales,
	StandardRatedExpenses, ReverseChargeImports string
}{
	StandardRatedSales:    "Standard-Rated Sales",
	ZeroRatedSales:        "Zero-Rated Sales",
	ExemptSales:           "Exempt Sales",
	StandardRatedExpenses: "Standard-Rated Expenses",
	ReverseChargeImports:  "Imports Under Reverse Charge",
}

// VATResult is the full VAT position breakdown.
type VATResult struct {
	OutputVATOnSales       decimal.Decimal `json:"output_vat_on_sales"`
	ReverseChargeOutputVAT decimal.Decimal `json:"reverse_charge_output_vat"`
	TotalOutputVAT         decimal.Decimal `json:"total_output_vat"`
	InputVATOnExpenses     decimal.Decimal `json:"input_vat_on_expenses"`
	ReverseChargeInputVAT  decimal.Decimal `json:"reverse_charge_input_vat"`
	TotalInputVAT          decimal.Decimal `json:"total_input_vat"`
	NetPosition            decimal.Decimal `json:"net_position"`
	PayableToFTA           decimal.Decimal `json:"payable_to_fta"`
	Refundable             decimal.Decimal `json:"refundable"`
	TaxableTurnover        decimal.Decimal `json:"taxable_turnover"`
	RegistrationRequired   bool            `json:"registration_required"`
	VoluntaryEligible      bool            `json:"voluntary_eligible"`
}
