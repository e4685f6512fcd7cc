package output

import (
	"github.com/shopspring/decimal"

	"github.com/uaetax/tax-calculator/pkg/money"
)

// FormatCurrency formats a decimal as an AED amount with 2 decimals and
// thousands separators.
func FormatCurrency(amount decimal.Decimal) string { return money.FormatAED(amount) }

// FormatPercentage formats a rate fraction (0.09) as a percentage (9.00%).
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
