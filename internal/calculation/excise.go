package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/uaetax/tax-calculator/internal/domain"
	"github.com/uaetax/tax-calculator/pkg/money"
)

// ExciseCalculator computes ad valorem excise tax per product category:
// 100% on tobacco, e-smoking products and energy drinks, 50% on carbonated
// and sweetened drinks.
type ExciseCalculator struct {
	CategoryRates map[string]decimal.Decimal
}

// NewExciseCalculator creates a calculator with the statutory rate table.
func NewExciseCalculator() *ExciseCalculator {
	return NewExciseCalculatorWithConfig(domain.DefaultRates().Excise)
}

// NewExciseCalculatorWithConfig creates a calculator with a configurable
// rate table.
func NewExciseCalculatorWithConfig(rates domain.ExciseRates) *ExciseCalculator {
	table := make(map[string]decimal.Decimal, len(rates.CategoryRates))
	for category, rate := range rates.CategoryRates {
		table[category] = rate
	}
	return &ExciseCalculator{CategoryRates: table}
}

// Categories returns the recognised category names in sorted order.
func (ec *ExciseCalculator) Categories() []string {
	names := make([]string, 0, len(ec.CategoryRates))
	for name := range ec.CategoryRates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compute evaluates every item against the category rate table. An
// unknown category is a validation failure naming the offending item.
func (ec *ExciseCalculator) Compute(in domain.ExciseInput) (*domain.ExciseResult, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoExciseItems
	}

	result := &domain.ExciseResult{Lines: make([]domain.ExciseLine, 0, len(in.Items))}
	for i, item := range in.Items {
		rate, ok := ec.CategoryRates[item.Category]
		if !ok {
			return nil, fmt.Errorf("item %d: unknown excise category %q", i+1, item.Category)
		}
		quantity := money.ClampMin0(item.Quantity)
		price := money.ClampMin0(item.BasePrice)
		base := price.Mul(quantity)
		due := base.Mul(rate)

		result.Lines = append(result.Lines, domain.ExciseLine{
			ItemID:      item.ID,
			Category:    item.Category,
			Description: item.Description,
			TaxableBase: base,
			Rate:        rate,
			ExciseDue:   due,
		})
		result.TotalBase = result.TotalBase.Add(base)
		result.TotalExciseDue = result.TotalExciseDue.Add(due)
	}
	result.TotalWithExcise = result.TotalBase.Add(result.TotalExciseDue)
	return result, nil
}
