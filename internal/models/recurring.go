package models

import (
	"fmt"
	"time"
)

// RecurringTransaction is a template that periodically materializes into a
// Transaction. It is a producer of transactions, not itself part of
// reconciliation.
type RecurringTransaction struct {
	ID          string    `json:"id" yaml:"id"`
	Type        string    `json:"type" yaml:"type"`
	Amount      Money     `json:"amount" yaml:"amount"`
	Category    string    `json:"category" yaml:"category"`
	Description string    `json:"description" yaml:"description"`
	Frequency   string    `json:"frequency" yaml:"frequency"`
	StartDate   time.Time `json:"start_date" yaml:"start_date"`
	// EndDate is optional; the zero value means the template never expires.
	EndDate time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	// LastRun is the date the template last materialized a transaction.
	LastRun time.Time `json:"last_run,omitempty" yaml:"last_run,omitempty"`
}

// Validate checks the structural invariants of a recurring template
func (r RecurringTransaction) Validate() error {
	if r.Type != TransactionTypeIncome && r.Type != TransactionTypeExpense {
		return fmt.Errorf("invalid recurring transaction type: %q", r.Type)
	}
	switch r.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
	default:
		return fmt.Errorf("invalid recurring frequency: %q", r.Frequency)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("recurring amount must be positive, got %s", r.Amount)
	}
	if r.StartDate.IsZero() {
		return fmt.Errorf("recurring start date is required")
	}
	return nil
}

// Expired reports whether the template has passed its end date
func (r RecurringTransaction) Expired(now time.Time) bool {
	return !r.EndDate.IsZero() && now.After(r.EndDate)
}
