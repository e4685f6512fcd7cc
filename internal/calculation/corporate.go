package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/uaetax/tax-calculator/internal/domain"
	"github.com/uaetax/tax-calculator/pkg/money"
)

// CORPORATE TAX ASSUMPTIONS:
//
// 1. Two-tier mainland regime: 0% on taxable income up to AED 375,000,
//    9% on the excess. The zero band is kept as an explicit line so the
//    breakdown always shows both bands.
//
// 2. Entertainment expenses are 50% deductible, so only half the entered
//    amount is added back. Fines, non-qualifying donations, other
//    disallowed expenses, transfer pricing upward adjustments and
//    disallowed interest are added back in full.
//
// 3. Brought-forward tax losses may offset at most 75% of the positive
//    pre-loss taxable base. A negative or zero pre-loss base permits no
//    utilisation this period, even when exempt income alone drove the
//    base negative.
//
// 4. QFZP regime: 0% on qualifying income, 9% on non-qualifying income,
//    conditional on passing the de-minimis test (non-qualifying revenue
//    at or below the lower of AED 5,000,000 and 5% of total revenue).
//    Breaching the test routes the entity to the standard regime.

// CorporateTaxCalculator computes UAE corporate tax liabilities. All
// methods are pure: identical inputs always yield identical breakdowns.
type CorporateTaxCalculator struct {
	ZeroBandThreshold       decimal.Decimal
	StandardRate            decimal.Decimal
	EntertainmentDeductible decimal.Decimal
	LossUtilisationCap      decimal.Decimal
	DeMinimisRevenueCap     decimal.Decimal
	DeMinimisRevenuePercent decimal.Decimal
	QFZPNonQualifyingRate   decimal.Decimal
}

// NewCorporateTaxCalculator creates a calculator with the statutory
// default rates.
func NewCorporateTaxCalculator() *CorporateTaxCalculator {
	return NewCorporateTaxCalculatorWithConfig(domain.DefaultRates().CorporateTax)
}

// NewCorporateTaxCalculatorWithConfig creates a calculator with
// configurable rates.
func NewCorporateTaxCalculatorWithConfig(rates domain.CorporateTaxRates) *CorporateTaxCalculator {
	return &CorporateTaxCalculator{
		ZeroBandThreshold:       rates.ZeroBandThreshold,
		StandardRate:            rates.StandardRate,
		EntertainmentDeductible: rates.EntertainmentDeductible,
		LossUtilisationCap:      rates.LossUtilisationCap,
		DeMinimisRevenueCap:     rates.DeMinimisRevenueCap,
		DeMinimisRevenuePercent: rates.DeMinimisRevenuePercent,
		QFZPNonQualifyingRate:   rates.QFZPNonQualifyingRate,
	}
}

// orZero treats a blank field as zero for arithmetic purposes.
func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// ComputeTaxableIncome derives taxable income from accounting profit and
// the rule-based adjustments. The final taxable income is deliberately not
// clamped: a negative result is a valid tax loss position and is clamped
// only when tax is computed on it.
func (ctc *CorporateTaxCalculator) ComputeTaxableIncome(in domain.CorporateTaxInput) domain.TaxableIncomeBreakdown {
	pbt := orZero(in.ProfitBeforeTax)

	entertainment := orZero(in.AddBackEntertainment).Mul(ctc.EntertainmentDeductible)
	fines := orZero(in.AddBackFines)
	donations := orZero(in.AddBackDonations)
	other := orZero(in.AddBackOther)
	tpUpward := orZero(in.TPUpwardAdjustment)
	interest := orZero(in.InterestDisallowed)

	totalAddBacks := entertainment.Add(fines).Add(donations).Add(other).Add(tpUpward).Add(interest)

	exempt := orZero(in.ExemptIncome)
	taxableBeforeLoss := pbt.Add(totalAddBacks).Sub(exempt)

	maxLossUtilisation := money.ClampMin0(taxableBeforeLoss).Mul(ctc.LossUtilisationCap)
	lossUtilised := decimal.Min(money.ClampMin0(orZero(in.LossBroughtForward)), maxLossUtilisation)

	return domain.TaxableIncomeBreakdown{
		ProfitBeforeTax:      pbt,
		EntertainmentAddBack: entertainment,
		FinesAddBack:         fines,
		DonationsAddBack:     donations,
		OtherAddBack:         other,
		TPUpwardAdjustment:   tpUpward,
		InterestDisallowed:   interest,
		TotalAddBacks:        totalAddBacks,
		ExemptIncome:         exempt,
		TaxableBeforeLoss:    taxableBeforeLoss,
		MaxLossUtilisation:   maxLossUtilisation,
		LossUtilised:         lossUtilised,
		TaxableIncome:        taxableBeforeLoss.Sub(lossUtilised),
	}
}

// ComputeStandardTax applies the two-tier mainland regime to a taxable
// income figure. Both bands are clamped so no negative tax line surfaces.
func (ctc *CorporateTaxCalculator) ComputeStandardTax(taxableIncome decimal.Decimal) domain.StandardTaxResult {
	taxableAtZero := money.ClampMin0(decimal.Min(taxableIncome, ctc.ZeroBandThreshold))
	taxableAtStandard := money.ClampMin0(taxableIncome.Sub(ctc.ZeroBandThreshold))

	// The zero band line is kept explicit for the breakdown display.
	taxAtZero := taxableAtZero.Mul(decimal.Zero)
	taxAtStandard := taxableAtStandard.Mul(ctc.StandardRate)

	return domain.StandardTaxResult{
		TaxableAtZeroRate:     taxableAtZero,
		TaxableAtStandardRate: taxableAtStandard,
		TaxAtZeroRate:         taxAtZero,
		TaxAtStandardRate:     taxAtStandard,
		TotalTax:              taxAtZero.Add(taxAtStandard),
	}
}

// ComputeDeMinimis runs the free-zone de-minimis test. Both revenue fields
// must be entered; running the test is always an explicit action.
func (ctc *CorporateTaxCalculator) ComputeDeMinimis(in domain.CorporateTaxInput) (domain.DeMinimisResult, error) {
	var missing []string
	if in.FZTotalRevenue == nil {
		missing = append(missing, domain.CorporateFieldLabels.FZTotalRevenue)
	}
	if in.FZNonQualifyingRevenue == nil {
		missing = append(missing, domain.CorporateFieldLabels.FZNonQualifyingRevenue)
	}
	if len(missing) > 0 {
		return domain.DeMinimisResult{}, &MissingFieldsError{Fields: missing}
	}

	totalRevenue := *in.FZTotalRevenue
	nonQualifying := *in.FZNonQualifyingRevenue

	fivePercent := totalRevenue.Mul(ctc.DeMinimisRevenuePercent)
	threshold := decimal.Min(ctc.DeMinimisRevenueCap, fivePercent)

	return domain.DeMinimisResult{
		TotalRevenue:         totalRevenue,
		NonQualifyingRevenue: nonQualifying,
		FivePercentOfRevenue: fivePercent,
		AbsoluteCap:          ctc.DeMinimisRevenueCap,
		Threshold:            threshold,
		// Equal to the threshold counts as met.
		Met: nonQualifying.LessThanOrEqual(threshold),
	}, nil
}

// ComputeQFZPTax applies the QFZP rate to non-qualifying income only.
// Qualifying income is taxed at 0% implicitly, not as a separate charge.
func (ctc *CorporateTaxCalculator) ComputeQFZPTax(nonQualifyingIncome decimal.Decimal) domain.QFZPTaxResult {
	base := money.ClampMin0(nonQualifyingIncome)
	return domain.QFZPTaxResult{
		NonQualifyingIncome: base,
		TotalTax:            base.Mul(ctc.QFZPNonQualifyingRate),
	}
}

// missingStandardFields lists the blank fields among the nine required for
// the standard computation path, in display order.
func missingStandardFields(in domain.CorporateTaxInput) []string {
	labels := domain.CorporateFieldLabels
	checks := []struct {
		value *decimal.Decimal
		label string
	}{
		{in.ProfitBeforeTax, labels.ProfitBeforeTax},
		{in.AddBackEntertainment, labels.AddBackEntertainment},
		{in.AddBackFines, labels.AddBackFines},
		{in.AddBackDonations, labels.AddBackDonations},
		{in.AddBackOther, labels.AddBackOther},
		{in.TPUpwardAdjustment, labels.TPUpwardAdjustment},
		{in.InterestDisallowed, labels.InterestDisallowed},
		{in.ExemptIncome, labels.ExemptIncome},
		{in.LossBroughtForward, labels.LossBroughtForward},
	}

	var missing []string
	for _, c := range checks {
		if c.value == nil {
			missing = append(missing, c.label)
		}
	}
	return missing
}
