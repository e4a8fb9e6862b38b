package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single entry in the user's transaction log.
// Once a transaction has been reconciled against other entities it is only
// changed through explicit edit/delete actions.
type Transaction struct {
	ID          string    `json:"id" yaml:"id"`
	Type        string    `json:"type" yaml:"type"`
	Amount      Money     `json:"amount" yaml:"amount"`
	Category    string    `json:"category" yaml:"category"`
	Description string    `json:"description" yaml:"description"`
	Date        time.Time `json:"date" yaml:"date"`

	// RecurringTransactionID links a materialized transaction back to its
	// recurring template. Empty for one-off transactions.
	RecurringTransactionID string `json:"recurring_transaction_id,omitempty" yaml:"recurring_transaction_id,omitempty"`

	// ParentTransactionID models split transactions: a composite expense
	// broken into sub-transactions whose amounts sum to the parent's amount.
	ParentTransactionID string `json:"parent_transaction_id,omitempty" yaml:"parent_transaction_id,omitempty"`
}

// IsIncome returns true if the transaction is an income entry
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true if the transaction is an expense entry
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsSplitChild returns true if the transaction is part of a split parent
func (t Transaction) IsSplitChild() bool {
	return t.ParentTransactionID != ""
}

// Validate checks the structural invariants of a transaction
func (t Transaction) Validate() error {
	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return fmt.Errorf("invalid transaction type: %q", t.Type)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}

// SplitSum returns the sum of the given children's amounts and whether it
// matches the parent amount. The split invariant is checked read-side only;
// it is not enforced at write time.
func (t Transaction) SplitSum(children []Transaction) (Money, bool) {
	sum := ZeroMoney(t.Amount.Currency)
	for _, child := range children {
		if child.ParentTransactionID != t.ID {
			continue
		}
		added, err := sum.Add(child.Amount)
		if err != nil {
			return sum, false
		}
		sum = added
	}
	return sum, sum.Amount.Equal(t.Amount.Amount)
}

// SignedAmount returns the amount as a signed decimal: positive for income,
// negative for expense. Useful for cash-flow aggregation.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Amount.Neg()
	}
	return t.Amount.Amount
}
