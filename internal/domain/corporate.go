package domain

import (
	"github.com/shopspring/decimal"
)

// Regime identifies which corporate tax computation path applies to
// the entity.
type Regime string

const (
	RegimeMainland Regime = "mainland"
	RegimeQFZP     Regime = "qfzp"
	RegimeNonQFZP  Regime = "non_qfzp"
)

// Valid reports whether the regime is one of the recognised values.
func (r Regime) Valid() bool {
	switch r {
	case RegimeMainland, RegimeQFZP, RegimeNonQFZP:
		return true
	}
	return false
}

// DeMinimisStatus tracks whether the free-zone de-minimis test has been run
// and what its verdict was. The test is never run implicitly.
type DeMinimisStatus string

const (
	DeMinimisNotTested DeMinimisStatus = "not_tested"
	DeMinimisMet       DeMinimisStatus = "met"
	DeMinimisBreached  DeMinimisStatus = "breached"
)

// CorporateTaxInput holds the per-session corporate tax input set. A nil
// field means "not yet entered"; zero is a deliberate entry of zero.
type CorporateTaxInput struct {
	ProfitBeforeTax      *decimal.Decimal `yaml:"profit_before_tax" json:"profit_before_tax"`
	AddBackEntertainment *decimal.Decimal `yaml:"addback_entertainment" json:"addback_entertainment"`
	AddBackFines         *decimal.Decimal `yaml:"addback_fines" json:"addback_fines"`
	AddBackDonations     *decimal.Decimal `yaml:"addback_donations" json:"addback_donations"`
	AddBackOther         *decimal.Decimal `yaml:"addback_other" json:"addback_other"`
	TPUpwardAdjustment   *decimal.Decimal `yaml:"tp_upward_adjustment" json:"tp_upward_adjustment"`
	InterestDisallowed   *decimal.Decimal `yaml:"interest_disallowed" json:"interest_disallowed"`
	ExemptIncome         *decimal.Decimal `yaml:"exempt_income" json:"exempt_income"`
	LossBroughtForward   *decimal.Decimal `yaml:"loss_brought_forward" json:"loss_brought_forward"`

	// Free-zone fields, consulted only on the QFZP path.
	FZTotalRevenue         *decimal.Decimal `yaml:"fz_total_revenue" json:"fz_total_revenue"`
	FZNonQualifyingRevenue *decimal.Decimal `yaml:"fz_non_qualifying_revenue" json:"fz_non_qualifying_revenue"`
	FZNonQualifyingIncome  *decimal.Decimal `yaml:"fz_non_qualifying_income" json:"fz_non_qualifying_income"`
}

// CorporateFieldLabels maps struct fields to the labels surfaced in
// missing-field validation messages.
var CorporateFieldLabels = struct {
	ProfitBeforeTax, AddBackEntertainment, AddBackFines, AddBackDonations,
	AddBackOther, TPUpwardAdjustment, InterestDisallowed, ExemptIncome,
	LossBroughtForward, FZTotalRevenue, FZNonQualifyingRevenue,
	FZNonQualifyingIncome string
}{
	ProfitBeforeTax:        "Accounting Profit Before Tax",
	AddBackEntertainment:   "Entertainment Expenses",
	AddBackFines:           "Fines and Penalties",
	AddBackDonations:       "Non-Qualifying Donations",
	AddBackOther:           "Other Disallowed Expenses",
	TPUpwardAdjustment:     "Transfer Pricing Upward Adjustment",
	InterestDisallowed:     "Disallowed Interest",
	ExemptIncome:           "Exempt Income",
	LossBroughtForward:     "Tax Loss Brought Forward",
	FZTotalRevenue:         "Free Zone Total Revenue",
	FZNonQualifyingRevenue: "Free Zone Non-Qualifying Revenue",
	FZNonQualifyingIncome:  "Free Zone Non-Qualifying Income",
}

// TaxableIncomeBreakdown carries every intermediate of the taxable income
// derivation so the caller can render a full line-item breakdown.
type TaxableIncomeBreakdown struct {
	ProfitBeforeTax      decimal.Decimal `json:"profit_before_tax"`
	EntertainmentAddBack decimal.Decimal `json:"entertainment_add_back"`
	FinesAddBack         decimal.Decimal `json:"fines_add_back"`
	DonationsAddBack     decimal.Decimal `json:"donations_add_back"`
	OtherAddBack         decimal.Decimal `json:"other_add_back"`
	TPUpwardAdjustment   decimal.Decimal `json:"tp_upward_adjustment"`
	InterestDisallowed   decimal.Decimal `json:"interest_disallowed"`
	TotalAddBacks        decimal.Decimal `json:"total_add_backs"`
	ExemptIncome         decimal.Decimal `json:"exempt_income"`
	TaxableBeforeLoss    decimal.Decimal `json:"taxable_before_loss"`
	MaxLossUtilisation   decimal.Decimal `json:"max_loss_utilisation"`
	LossUtilised         decimal.Decimal `json:"loss_utilised"`
	TaxableIncome        decimal.Decimal `json:"taxable_income"`
}

// StandardTaxResult is the two-band mainland computation outcome.
type StandardTaxResult struct {
	TaxableAtZeroRate     decimal.Decimal `json:"taxable_at_zero_rate"`
	TaxableAtStandardRate decimal.Decimal `json:"taxable_at_standard_rate"`
	TaxAtZeroRate         decimal.Decimal `json:"tax_at_zero_rate"`
	TaxAtStandardRate     decimal.Decimal `json:"tax_at_standard_rate"`
	TotalTax              decimal.Decimal `json:"total_tax"`
}

// DeMinimisResult carries the numeric thresholds and verdict of the
// free-zone de-minimis test.
type DeMinimisResult struct {
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	NonQualifyingRevenue decimal.Decimal `json:"non_qualifying_revenue"`
	FivePercentOfRevenue decimal.Decimal `json:"five_percent_of_revenue"`
	AbsoluteCap          decimal.Decimal `json:"absolute_cap"`
	Threshold            decimal.Decimal `json:"threshold"`
	Met                  bool            `json:"met"`
}

// QFZPTaxResult is the qualifying free zone person computation outcome:
// 9% on non-qualifying income only, qualifying income implicitly at 0%.
type QFZPTaxResult struct {
	NonQualifyingIncome decimal.Decimal `json:"non_qualifying_income"`
	TotalTax            decimal.Decimal `json:"total_tax"`
}

// CorporateTaxResult is the full computation breakdown returned to the
// caller. Exactly one of Standard or QFZP is populated depending on the
// routing outcome.
type CorporateTaxResult struct {
	Regime          Regime                  `json:"regime"`
	DeMinimisStatus DeMinimisStatus         `json:"de_minimis_status"`
	Breakdown       *TaxableIncomeBreakdown `json:"breakdown,omitempty"`
	Standard        *StandardTaxResult      `json:"standard,omitempty"`
	QFZP            *QFZPTaxResult          `json:"qfzp,omitempty"`
	Note            string                  `json:"note,omitempty"`
	TotalTax        decimal.Decimal         `json:"total_tax"`
}
