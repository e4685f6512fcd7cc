package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Excise product categories recognised by the rate table.
const (
	ExciseCategoryTobacco          = "tobacco"
	ExciseCategoryEnergyDrinks     = "energy_drinks"
	ExciseCategoryCarbonatedDrinks = "carbonated_drinks"
	ExciseCategorySweetenedDrinks  = "sweetened_drinks"
	ExciseCategoryESmokingDevices  = "e_smoking_devices"
	ExciseCategoryESmokingLiquids  = "e_smoking_liquids"
)

// ExciseItem is one excisable product line: a category, a unit count and
// the taxable base price per unit.
type ExciseItem struct {
	ID          uuid.UUID       `yaml:"-" json:"id"`
	Category    string          `yaml:"category" json:"category"`
	Description string          `yaml:"description" json:"description"`
	Quantity    decimal.Decimal `yaml:"quantity" json:"quantity"`
	BasePrice   decimal.Decimal `yaml:"base_price" json:"base_price"`
}

// NewExciseItem returns a fresh item with the default field values.
func NewExciseItem() ExciseItem {
	return ExciseItem{
		ID:        uuid.New(),
		Category:  ExciseCategoryCarbonatedDrinks,
		Quantity:  decimal.Zero,
		BasePrice: decimal.Zero,
	}
}

// ExciseInput is the full item list for one computation.
type ExciseInput struct {
	Items []ExciseItem `yaml:"items" json:"items"`
}

// ExciseLine is the per-item evaluation outcome.
type ExciseLine struct {
	ItemID      uuid.UUID       `json:"item_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	TaxableBase decimal.Decimal `json:"taxable_base"`
	Rate        decimal.Decimal `json:"rate"`
	ExciseDue   decimal.Decimal `json:"excise_due"`
}

// ExciseResult aggregates the excise position across all items.
type ExciseResult struct {
	Lines           []ExciseLine    `json:"lines"`
	TotalBase       decimal.Decimal `json:"total_base"`
	TotalExciseDue  decimal.Decimal `json:"total_excise_due"`
	TotalWithExcise decimal.Decimal `json:"total_with_excise"`
}
