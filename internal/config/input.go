package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/uaetax/tax-calculator/internal/domain"
)

// InputParser handles parsing of input and rates files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadRates loads a rates file and merges it over the built-in defaults:
// zero-valued sections keep the statutory values.
func (ip *InputParser) LoadRates(filename string) (domain.RatesConfig, error) {
	rates := domain.DefaultRates()

	data, err := os.ReadFile(filename)
	if err != nil {
		return rates, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return rates, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateRates(&rates); err != nil {
		return rates, fmt.Errorf("rates validation failed: %w", err)
	}
	return rates, nil
}

// ValidateRates validates the loaded rates configuration
func (ip *InputParser) ValidateRates(rates *domain.RatesConfig) error {
	ct := rates.CorporateTax
	if ct.StandardRate.IsNegative() || ct.StandardRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("corporate standard rate must be between 0 and 1")
	}
	if ct.ZeroBandThreshold.IsNegative() {
		return fmt.Errorf("zero band threshold cannot be negative")
	}
	if ct.LossUtilisationCap.IsNegative() || ct.LossUtilisationCap.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("loss utilisation cap must be between 0 and 1")
	}
	if ct.EntertainmentDeductible.IsNegative() || ct.EntertainmentDeductible.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("entertainment deductible share must be between 0 and 1")
	}
	if ct.DeMinimisRevenueCap.IsNegative() {
		return fmt.Errorf("de-minimis revenue cap cannot be negative")
	}
	if ct.DeMinimisRevenuePercent.IsNegative() || ct.DeMinimisRevenuePercent.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("de-minimis revenue percent must be between 0 and 1")
	}
	if rates.TransferPricing.CTImpactRate.IsNegative() || rates.TransferPricing.CTImpactRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("transfer pricing impact rate must be between 0 and 1")
	}
	if rates.VAT.StandardRate.IsNegative() || rates.VAT.StandardRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("VAT standard rate must be between 0 and 1")
	}
	if rates.VAT.VoluntaryRegistrationThreshold.GreaterThan(rates.VAT.MandatoryRegistrationThreshold) {
		return fmt.Errorf("voluntary registration threshold cannot exceed the mandatory threshold")
	}
	for category, rate := range rates.Excise.CategoryRates {
		if rate.IsNegative() {
			return fmt.Errorf("excise rate for %s cannot be negative", category)
		}
	}
	return nil
}

// CorporateInputFile is the on-disk shape of a corporate tax calculation
// request.
type CorporateInputFile struct {
	Regime domain.Regime            `yaml:"regime"`
	Inputs domain.CorporateTaxInput `yaml:"inputs"`
}

// LoadCorporateInput loads a corporate tax input file
func (ip *InputParser) LoadCorporateInput(filename string) (*CorporateInputFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var in CorporateInputFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if in.Regime == "" {
		in.Regime = domain.RegimeMainland
	}
	if !in.Regime.Valid() {
		return nil, fmt.Errorf("regime must be one of mainland, qfzp, non_qfzp; got %q", in.Regime)
	}
	return &in, nil
}

// LoadTransferPricingInput loads a transfer pricing input file
func (ip *InputParser) LoadTransferPricingInput(filename string) (*domain.TransferPricingInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var in domain.TransferPricingInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if in.EntityType == "" {
		in.EntityType = domain.EntityMainland
	}
	if in.EntityType != domain.EntityMainland && in.EntityType != domain.EntityFreeZone {
		return nil, fmt.Errorf("entity type must be mainland or free_zone; got %q", in.EntityType)
	}
	if len(in.Transactions) == 0 {
		return nil, fmt.Errorf("at least one transaction is required")
	}
	for i := range in.Transactions {
		row := &in.Transactions[i]
		if !row.Type.Valid() {
			return nil, fmt.Errorf("transaction %d: type must be expense or income; got %q", i+1, row.Type)
		}
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
	}
	return &in, nil
}

// LoadVATInput loads a VAT input file
func (ip *InputParser) LoadVATInput(filename string) (*domain.VATInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var in domain.VATInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &in, nil
}

// LoadExciseInput loads an excise input file
func (ip *InputParser) LoadExciseInput(filename string) (*domain.ExciseInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var in domain.ExciseInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("at least one item is required")
	}
	for i := range in.Items {
		item := &in.Items[i]
		if item.Quantity.IsNegative() {
			return nil, fmt.Errorf("item %d: quantity cannot be negative", i+1)
		}
		if item.BasePrice.IsNegative() {
			return nil, fmt.Errorf("item %d: base price cannot be negative", i+1)
		}
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
	}
	return &in, nil
}
