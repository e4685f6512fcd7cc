package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes a related-party expense (the entity pays)
// from related-party income (the entity charges).
type TransactionType string

const (
	TransactionExpense TransactionType = "expense"
	TransactionIncome  TransactionType = "income"
)

// Valid reports whether the transaction type is recognised.
func (t TransactionType) Valid() bool {
	return t == TransactionExpense || t == TransactionIncome
}

// EntityType affects only the advisory note on the transfer pricing result,
// never the arithmetic.
type EntityType string

const (
	EntityMainland EntityType = "mainland"
	EntityFreeZone EntityType = "free_zone"
)

// TransactionRow is one related-party transaction tested against its
// arm's-length benchmark.
type TransactionRow struct {
	ID          uuid.UUID       `yaml:"-" json:"id"`
	Type        TransactionType `yaml:"type" json:"type"`
	Description string          `yaml:"description" json:"description"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	ArmLength   decimal.Decimal `yaml:"arm_length" json:"arm_length"`
}

// NewTransactionRow returns a fresh row with the default field values.
func NewTransactionRow() TransactionRow {
	return TransactionRow{
		ID:        uuid.New(),
		Type:      TransactionExpense,
		Amount:    decimal.Zero,
		ArmLength: decimal.Zero,
	}
}

// TransferPricingInput is the full ordered transaction list plus the
// entity context.
type TransferPricingInput struct {
	EntityType   EntityType       `yaml:"entity_type" json:"entity_type"`
	Transactions []TransactionRow `yaml:"transactions" json:"transactions"`
}

// RowAdjustment is the per-row evaluation outcome.
type RowAdjustment struct {
	RowID       uuid.UUID       `json:"row_id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ArmLength   decimal.Decimal `json:"arm_length"`
	AddBack     decimal.Decimal `json:"add_back"`
}

// TransferPricingResult aggregates the mandatory upward adjustments and the
// incremental corporate tax they attract.
type TransferPricingResult struct {
	Rows         []RowAdjustment `json:"rows"`
	TotalAddBack decimal.Decimal `json:"total_add_back"`
	CTImpact     decimal.Decimal `json:"ct_impact"`
	Note         string          `json:"note,omitempty"`
}
