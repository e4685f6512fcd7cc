package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uaetax/tax-calculator/internal/domain"
)

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// fullStandardInput returns an input set with every standard-path field
// entered as zero, ready to be overridden per test.
func fullStandardInput() domain.CorporateTaxInput {
	return domain.CorporateTaxInput{
		ProfitBeforeTax:      dec(0),
		AddBackEntertainment: dec(0),
		AddBackFines:         dec(0),
		AddBackDonations:     dec(0),
		AddBackOther:         dec(0),
		TPUpwardAdjustment:   dec(0),
		InterestDisallowed:   dec(0),
		ExemptIncome:         dec(0),
		LossBroughtForward:   dec(0),
	}
}

func TestComputeTaxableIncome(t *testing.T) {
	calc := NewCorporateTaxCalculator()

	tests := []struct {
		name            string
		mutate          func(*domain.CorporateTaxInput)
		expectedTaxable decimal.Decimal
		expectedLoss    decimal.Decimal
	}{
		{
			name: "plain profit no adjustments",
			mutate: func(in *domain.CorporateTaxInput) {
				in.ProfitBeforeTax = dec(500000)
			},
			expectedTaxable: decimal.NewFromInt(500000),
			expectedLoss:    decimal.Zero,
		},
		{
			name: "entertainment adds back at fifty percent",
			mutate: func(in *domain.CorporateTaxInput) {
				in.AddBackEntertainment = dec(100000)
			},
			expectedTaxable: decimal.NewFromInt(50000),
			expectedLoss:    decimal.Zero,
		},
		{
			name: "other add-backs contribute in full",
			mutate: func(in *domain.CorporateTaxInput) {
				in.ProfitBeforeTax = dec(100000)
				in.AddBackFines = dec(10000)
				in.AddBackDonations = dec(5000)
				in.AddBackOther = dec(2500)
				in.TPUpwardAdjustment = dec(1000)
				in.InterestDisallowed = dec(1500)
			},
			expectedTaxable: decimal.NewFromInt(120000),
			expectedLoss:    decimal.Zero,
		},
		{
			name: "loss utilisation capped at seventy five percent",
			mutate: func(in *domain.CorporateTaxInput) {
				in.ProfitBeforeTax = dec(1000000)
				in.LossBroughtForward = dec(2000000)
			},
			expectedTaxable: decimal.NewFromInt(250000),
			expectedLoss:    decimal.NewFromInt(750000),
		},
		{
			name: "small loss fully utilised",
			mutate: func(in *domain.CorporateTaxInput) {
				in.ProfitBeforeTax = dec(1000000)
				in.LossBroughtForward = dec(100000)
			},
			expectedTaxable: decimal.NewFromInt(900000),
			expectedLoss:    decimal.NewFromInt(100000),
		},
		{
			name: "exempt income deducted in full",
			mutate: func(in *domain.CorporateTaxInput) {
				in.ProfitBeforeTax = dec(400000)
				in.ExemptIncome = dec(150000)
			},
			expectedTaxable: decimal.NewFromInt(250000),
			expectedLoss:    decimal.Zero,
		},
		{
			name: "exempt income can drive taxable income negative with no loss relief",
			mutate: func(in *domain.CorporateTaxInput) {
				in.ProfitBeforeTax = dec(100000)
				in.ExemptIncome = dec(300000)
				in.LossBroughtForward = dec(50000)
			},
			expectedTaxable: decimal.NewFromInt(-200000),
			expectedLoss:    decimal.Zero,
		},
		{
			name: "negative loss brought forward treated as zero",
			mutate: func(in *domain.CorporateTaxInput) {
				in.ProfitBeforeTax = dec(500000)
				in.LossBroughtForward = dec(-100000)
			},
			expectedTaxable: decimal.NewFromInt(500000),
			expectedLoss:    decimal.Zero,
		},
		{
			name:            "all nil fields treated as zero",
			mutate:          func(in *domain.CorporateTaxInput) { *in = domain.CorporateTaxInput{} },
			expectedTaxable: decimal.Zero,
			expectedLoss:    decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fullStandardInput()
			tt.mutate(&in)

			b := calc.ComputeTaxableIncome(in)
			assert.True(t, b.TaxableIncome.Equal(tt.expectedTaxable),
				"taxable income: expected %s, got %s", tt.expectedTaxable, b.TaxableIncome)
			assert.True(t, b.LossUtilised.Equal(tt.expectedLoss),
				"loss utilised: expected %s, got %s", tt.expectedLoss, b.LossUtilised)

			// Loss utilisation invariants hold for every input.
			lossCap := b.TaxableBeforeLoss
			if lossCap.IsNegative() {
				lossCap = decimal.Zero
			}
			lossCap = lossCap.Mul(decimal.NewFromFloat(0.75))
			assert.True(t, b.LossUtilised.LessThanOrEqual(lossCap))
		})
	}
}

func TestComputeStandardTax(t *testing.T) {
	calc := NewCorporateTaxCalculator()

	tests := []struct {
		name          string
		taxableIncome decimal.Decimal
		expectedTax   decimal.Decimal
	}{
		{
			name:          "entirely in zero band",
			taxableIncome: decimal.NewFromInt(250000),
			expectedTax:   decimal.Zero,
		},
		{
			name:          "exactly at threshold",
			taxableIncome: decimal.NewFromInt(375000),
			expectedTax:   decimal.Zero,
		},
		{
			name:          "above threshold",
			taxableIncome: decimal.NewFromInt(500000),
			expectedTax:   decimal.NewFromInt(11250), // (500000-375000) * 0.09
		},
		{
			name:          "negative taxable income yields zero tax",
			taxableIncome: decimal.NewFromInt(-200000),
			expectedTax:   decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.ComputeStandardTax(tt.taxableIncome)
			assert.True(t, result.TotalTax.Equal(tt.expectedTax),
				"expected %s, got %s", tt.expectedTax, result.TotalTax)
			assert.False(t, result.TotalTax.IsNegative(), "tax payable must never be negative")
			assert.True(t, result.TaxAtZeroRate.IsZero())
		})
	}
}

func TestMainlandScenario(t *testing.T) {
	calc := NewCorporateTaxCalculator()

	in := fullStandardInput()
	in.ProfitBeforeTax = dec(500000)

	b := calc.ComputeTaxableIncome(in)
	require.True(t, b.TaxableIncome.Equal(decimal.NewFromInt(500000)))

	result := calc.ComputeStandardTax(b.TaxableIncome)
	assert.True(t, result.TaxableAtZeroRate.Equal(decimal.NewFromInt(375000)))
	assert.True(t, result.TaxableAtStandardRate.Equal(decimal.NewFromInt(125000)))
	assert.True(t, result.TotalTax.Equal(decimal.NewFromInt(11250)))
}

func TestComputeDeMinimis(t *testing.T) {
	calc := NewCorporateTaxCalculator()

	tests := []struct {
		name              string
		totalRevenue      float64
		nonQualifying     float64
		expectedThreshold decimal.Decimal
		expectedMet       bool
	}{
		{
			name:              "five percent below cap",
			totalRevenue:      10000000,
			nonQualifying:     500000,
			expectedThreshold: decimal.NewFromInt(500000),
			expectedMet:       true, // boundary inclusive
		},
		{
			name:              "breached just above threshold",
			totalRevenue:      10000000,
			nonQualifying:     500001,
			expectedThreshold: decimal.NewFromInt(500000),
			expectedMet:       false,
		},
		{
			name:              "cap binds for large revenue",
			totalRevenue:      200000000,
			nonQualifying:     5000001,
			expectedThreshold: decimal.NewFromInt(5000000),
			expectedMet:       false,
		},
		{
			name:              "cap binds and met",
			totalRevenue:      200000000,
			nonQualifying:     5000000,
			expectedThreshold: decimal.NewFromInt(5000000),
			expectedMet:       true,
		},
		{
			name:              "zero revenue",
			totalRevenue:      0,
			nonQualifying:     0,
			expectedThreshold: decimal.Zero,
			expectedMet:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.CorporateTaxInput{
				FZTotalRevenue:         dec(tt.totalRevenue),
				FZNonQualifyingRevenue: dec(tt.nonQualifying),
			}
			result, err := calc.ComputeDeMinimis(in)
			require.NoError(t, err)
			assert.True(t, result.Threshold.Equal(tt.expectedThreshold),
				"threshold: expected %s, got %s", tt.expectedThreshold, result.Threshold)
			assert.Equal(t, tt.expectedMet, result.Met)
		})
	}
}

func TestComputeDeMinimisMissingFields(t *testing.T) {
	calc := NewCorporateTaxCalculator()

	_, err := calc.ComputeDeMinimis(domain.CorporateTaxInput{FZTotalRevenue: dec(1000000)})
	fields, ok := IsMissingFields(err)
	require.True(t, ok)
	assert.Equal(t, []string{domain.CorporateFieldLabels.FZNonQualifyingRevenue}, fields)

	_, err = calc.ComputeDeMinimis(domain.CorporateTaxInput{})
	fields, ok = IsMissingFields(err)
	require.True(t, ok)
	assert.Len(t, fields, 2)
}

func TestComputeQFZPTax(t *testing.T) {
	calc := NewCorporateTaxCalculator()

	result := calc.ComputeQFZPTax(decimal.NewFromInt(200000))
	assert.True(t, result.TotalTax.Equal(decimal.NewFromInt(18000)))

	// Negative non-qualifying income is clamped, never a negative charge.
	result = calc.ComputeQFZPTax(decimal.NewFromInt(-50000))
	assert.True(t, result.TotalTax.IsZero())
}

func TestEnginePurity(t *testing.T) {
	calc := NewCorporateTaxCalculator()
	in := fullStandardInput()
	in.ProfitBeforeTax = dec(817263.55)
	in.AddBackEntertainment = dec(12345.67)
	in.LossBroughtForward = dec(90000)

	first := calc.ComputeTaxableIncome(in)
	second := calc.ComputeTaxableIncome(in)
	assert.Equal(t, first, second, "identical inputs must yield identical breakdowns")
}
