package calculation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/uaetax/tax-calculator/internal/domain"
)

// TRANSFER PRICING ASSUMPTIONS:
//
// 1. Only upward (taxpayer-adverse) adjustments are computed. An expense
//    priced at or below arm's length, or income priced at or above it,
//    yields no adjustment. Downward adjustments require FTA pre-approval
//    and are out of scope.
//
// 2. The incremental corporate tax impact is a flat 9% of the total
//    add-back regardless of entity regime. Free zone entities get an
//    advisory note, not different arithmetic.

// TransferPricingCalculator evaluates related-party transactions against
// their arm's-length benchmarks.
type TransferPricingCalculator struct {
	CTImpactRate decimal.Decimal
}

// NewTransferPricingCalculator creates a calculator with the default rate.
func NewTransferPricingCalculator() *TransferPricingCalculator {
	return NewTransferPricingCalculatorWithConfig(domain.DefaultRates().TransferPricing)
}

// NewTransferPricingCalculatorWithConfig creates a calculator with a
// configurable impact rate.
func NewTransferPricingCalculatorWithConfig(rates domain.TransferPricingRates) *TransferPricingCalculator {
	return &TransferPricingCalculator{CTImpactRate: rates.CTImpactRate}
}

// RowAddBack evaluates a single transaction row. An add-back arises only
// when the entity overpaid a related party (expense above arm's length) or
// under-charged one (income below arm's length).
func (tpc *TransferPricingCalculator) RowAddBack(row domain.TransactionRow) decimal.Decimal {
	switch row.Type {
	case domain.TransactionExpense:
		if row.Amount.GreaterThan(row.ArmLength) {
			return row.Amount.Sub(row.ArmLength)
		}
	case domain.TransactionIncome:
		if row.Amount.LessThan(row.ArmLength) {
			return row.ArmLength.Sub(row.Amount)
		}
	}
	return decimal.Zero
}

// Compute aggregates the mandatory add-backs over the full ordered
// transaction list and the incremental corporate tax they attract.
func (tpc *TransferPricingCalculator) Compute(in domain.TransferPricingInput) (*domain.TransferPricingResult, error) {
	if len(in.Transactions) == 0 {
		return nil, ErrLastTransactionRow
	}
	for i, row := range in.Transactions {
		if !row.Type.Valid() {
			return nil, fmt.Errorf("transaction %d: unknown type %q", i+1, row.Type)
		}
	}

	result := &domain.TransferPricingResult{
		Rows: make([]domain.RowAdjustment, 0, len(in.Transactions)),
	}
	total := decimal.Zero
	for _, row := range in.Transactions {
		addBack := tpc.RowAddBack(row)
		total = total.Add(addBack)
		result.Rows = append(result.Rows, domain.RowAdjustment{
			RowID:       row.ID,
			Type:        row.Type,
			Description: row.Description,
			Amount:      row.Amount,
			ArmLength:   row.ArmLength,
			AddBack:     addBack,
		})
	}

	result.TotalAddBack = total
	result.CTImpact = total.Mul(tpc.CTImpactRate)
	if in.EntityType == domain.EntityFreeZone {
		result.Note = "Free zone entity: add-backs to non-qualifying income may also affect the de-minimis test."
	}
	return result, nil
}

// TransactionList is an ordered, mutable collection of transaction rows
// with the invariant that at least one row always exists.
type TransactionList struct {
	rows []domain.TransactionRow
}

// NewTransactionList creates a list seeded with one default row.
func NewTransactionList() *TransactionList {
	return &TransactionList{rows: []domain.TransactionRow{domain.NewTransactionRow()}}
}

// Rows returns a copy of the current rows in order.
func (tl *TransactionList) Rows() []domain.TransactionRow {
	out := make([]domain.TransactionRow, len(tl.rows))
	copy(out, tl.rows)
	return out
}

// Append adds a new row with default values and returns it.
func (tl *TransactionList) Append() domain.TransactionRow {
	row := domain.NewTransactionRow()
	tl.rows = append(tl.rows, row)
	return row
}

// Remove deletes the row with the given ID. Removing the last remaining
// row is refused.
func (tl *TransactionList) Remove(id uuid.UUID) error {
	if len(tl.rows) <= 1 {
		return ErrLastTransactionRow
	}
	for i, row := range tl.rows {
		if row.ID == id {
			tl.rows = append(tl.rows[:i], tl.rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no transaction row with id %s", id)
}

// Update replaces the row with the same ID.
func (tl *TransactionList) Update(row domain.TransactionRow) error {
	if !row.Type.Valid() {
		return fmt.Errorf("unknown transaction type %q", row.Type)
	}
	for i, existing := range tl.rows {
		if existing.ID == row.ID {
			tl.rows[i] = row
			return nil
		}
	}
	return fmt.Errorf("no transaction row with id %s", row.ID)
}
