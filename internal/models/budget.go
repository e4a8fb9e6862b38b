package models

import "fmt"

// Budget represents a spending limit for a category over a period.
// The amount spent against a budget is a read-side aggregate over matching
// expense transactions; it is never stored or independently mutated.
type Budget struct {
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Amount   Money  `json:"amount" yaml:"amount"`
	Period   string `json:"period" yaml:"period"`
}

// Validate checks the structural invariants of a budget
func (b Budget) Validate() error {
	switch b.Period {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
	default:
		return fmt.Errorf("invalid budget period: %q", b.Period)
	}
	if b.Category == "" {
		return fmt.Errorf("budget category is required")
	}
	if !b.Amount.IsPositive() {
		return fmt.Errorf("budget amount must be positive, got %s", b.Amount)
	}
	return nil
}
