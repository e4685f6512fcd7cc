package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/uaetax/tax-calculator/internal/domain"
	"github.com/uaetax/tax-calculator/pkg/money"
)

// VAT ASSUMPTIONS:
//
// 1. Standard rate 5%; zero-rated and exempt supplies attract no output
//    VAT. Input VAT on standard-rated expenses is treated as fully
//    recoverable.
//
// 2. Imports under the reverse charge produce matching output and input
//    lines. They net to zero but are shown separately so the return
//    breakdown matches the FTA form.
//
// 3. Taxable turnover for the registration tests is standard-rated plus
//    zero-rated sales (exempt supplies do not count).

// VATCalculator computes a per-period VAT position.
type VATCalculator struct {
	StandardRate                   decimal.Decimal
	MandatoryRegistrationThreshold decimal.Decimal
	VoluntaryRegistrationThreshold decimal.Decimal
}

// NewVATCalculator creates a calculator with the statutory default rates.
func NewVATCalculator() *VATCalculator {
	return NewVATCalculatorWithConfig(domain.DefaultRates().VAT)
}

// NewVATCalculatorWithConfig creates a calculator with configurable rates.
func NewVATCalculatorWithConfig(rates domain.VATRates) *VATCalculator {
	return &VATCalculator{
		StandardRate:                   rates.StandardRate,
		MandatoryRegistrationThreshold: rates.MandatoryRegistrationThreshold,
		VoluntaryRegistrationThreshold: rates.VoluntaryRegistrationThreshold,
	}
}

// Compute derives the net VAT position. Every required field must be
// entered; blanks are reported by label, not silently zeroed, because a
// VAT return claims completeness.
func (vc *VATCalculator) Compute(in domain.VATInput) (*domain.VATResult, error) {
	labels := domain.VATFieldLabels
	var missing []string
	if in.StandardRatedSales == nil {
		missing = append(missing, labels.StandardRatedSales)
	}
	if in.ZeroRatedSales == nil {
		missing = append(missing, labels.ZeroRatedSales)
	}
	if in.ExemptSales == nil {
		missing = append(missing, labels.ExemptSales)
	}
	if in.StandardRatedExpenses == nil {
		missing = append(missing, labels.StandardRatedExpenses)
	}
	if in.ReverseChargeImports == nil {
		missing = append(missing, labels.ReverseChargeImports)
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	standardSales := money.ClampMin0(*in.StandardRatedSales)
	zeroSales := money.ClampMin0(*in.ZeroRatedSales)
	expenses := money.ClampMin0(*in.StandardRatedExpenses)
	imports := money.ClampMin0(*in.ReverseChargeImports)

	outputOnSales := standardSales.Mul(vc.StandardRate)
	reverseChargeVAT := imports.Mul(vc.StandardRate)
	totalOutput := outputOnSales.Add(reverseChargeVAT)

	inputOnExpenses := expenses.Mul(vc.StandardRate)
	totalInput := inputOnExpenses.Add(reverseChargeVAT)

	net := totalOutput.Sub(totalInput)

	turnover := standardSales.Add(zeroSales)

	return &domain.VATResult{
		OutputVATOnSales:       outputOnSales,
		ReverseChargeOutputVAT: reverseChargeVAT,
		TotalOutputVAT:         totalOutput,
		InputVATOnExpenses:     inputOnExpenses,
		ReverseChargeInputVAT:  reverseChargeVAT,
		TotalInputVAT:          totalInput,
		NetPosition:            net,
		PayableToFTA:           money.ClampMin0(net),
		Refundable:             money.ClampMin0(net.Neg()),
		TaxableTurnover:        turnover,
		RegistrationRequired:   turnover.GreaterThanOrEqual(vc.MandatoryRegistrationThreshold),
		VoluntaryEligible:      turnover.GreaterThanOrEqual(vc.VoluntaryRegistrationThreshold),
	}, nil
}
