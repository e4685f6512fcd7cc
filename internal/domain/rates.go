package domain

import (
	"github.com/shopspring/decimal"
)

// RatesConfig contains the statutory rates and thresholds that apply
// uniformly to every computation. It can be loaded from rates.yaml and
// merged over the built-in defaults.
type RatesConfig struct {
	Metadata        RatesMetadata        `yaml:"metadata" json:"metadata"`
	CorporateTax    CorporateTaxRates    `yaml:"corporate_tax" json:"corporate_tax"`
	TransferPricing TransferPricingRates `yaml:"transfer_pricing" json:"transfer_pricing"`
	VAT             VATRates             `yaml:"vat" json:"vat"`
	Excise          ExciseRates          `yaml:"excise" json:"excise"`
}

// RatesMetadata contains information about the rates data
type RatesMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// CorporateTaxRates contains UAE corporate tax rules
type CorporateTaxRates struct {
	ZeroBandThreshold       decimal.Decimal `yaml:"zero_band_threshold" json:"zero_band_threshold"`
	StandardRate            decimal.Decimal `yaml:"standard_rate" json:"standard_rate"`
	EntertainmentDeductible decimal.Decimal `yaml:"entertainment_deductible_share" json:"entertainment_deductible_share"`
	LossUtilisationCap      decimal.Decimal `yaml:"loss_utilisation_cap" json:"loss_utilisation_cap"`
	DeMinimisRevenueCap     decimal.Decimal `yaml:"de_minimis_revenue_cap" json:"de_minimis_revenue_cap"`
	DeMinimisRevenuePercent decimal.Decimal `yaml:"de_minimis_revenue_percent" json:"de_minimis_revenue_percent"`
	QFZPNonQualifyingRate   decimal.Decimal `yaml:"qfzp_non_qualifying_rate" json:"qfzp_non_qualifying_rate"`
}

// TransferPricingRates contains the corporate tax impact rate applied to
// arm's-length add-backs
type TransferPricingRates struct {
	CTImpactRate decimal.Decimal `yaml:"ct_impact_rate" json:"ct_impact_rate"`
}

// VATRates contains UAE VAT rules
type VATRates struct {
	StandardRate                   decimal.Decimal `yaml:"standard_rate" json:"standard_rate"`
	MandatoryRegistrationThreshold decimal.Decimal `yaml:"mandatory_registration_threshold" json:"mandatory_registration_threshold"`
	VoluntaryRegistrationThreshold decimal.Decimal `yaml:"voluntary_registration_threshold" json:"voluntary_registration_threshold"`
}

// ExciseRates maps excise product categories to their ad valorem rates
type ExciseRates struct {
	CategoryRates map[string]decimal.Decimal `yaml:"category_rates" json:"category_rates"`
}

// DefaultRates returns the statutory UAE rates in force for 2024 onwards.
func DefaultRates() RatesConfig {
	return RatesConfig{
		Metadata: RatesMetadata{
			DataYear:    2024,
			Description: "UAE federal tax rates and thresholds",
		},
		CorporateTax: CorporateTaxRates{
			ZeroBandThreshold:       decimal.NewFromInt(375000),
			StandardRate:            decimal.NewFromFloat(0.09),
			EntertainmentDeductible: decimal.NewFromFloat(0.50),
			LossUtilisationCap:      decimal.NewFromFloat(0.75),
			DeMinimisRevenueCap:     decimal.NewFromInt(5000000),
			DeMinimisRevenuePercent: decimal.NewFromFloat(0.05),
			QFZPNonQualifyingRate:   decimal.NewFromFloat(0.09),
		},
		TransferPricing: TransferPricingRates{
			CTImpactRate: decimal.NewFromFloat(0.09),
		},
		VAT: VATRates{
			StandardRate:                   decimal.NewFromFloat(0.05),
			MandatoryRegistrationThreshold: decimal.NewFromInt(375000),
			VoluntaryRegistrationThreshold: decimal.NewFromInt(187500),
		},
		Excise: ExciseRates{
			CategoryRates: map[string]decimal.Decimal{
				ExciseCategoryTobacco:          decimal.NewFromFloat(1.00),
				ExciseCategoryEnergyDrinks:     decimal.NewFromFloat(1.00),
				ExciseCategoryESmokingDevices:  decimal.NewFromFloat(1.00),
				ExciseCategoryESmokingLiquids:  decimal.NewFromFloat(1.00),
				ExciseCategoryCarbonatedDrinks: decimal.NewFromFloat(0.50),
				ExciseCategorySweetenedDrinks:  decimal.NewFromFloat(0.50),
			},
		},
	}
}
