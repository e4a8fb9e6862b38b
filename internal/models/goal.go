package models

import (
	"fmt"
	"time"
)

// Goal represents a savings goal with a derived running balance.
// CurrentAmount must only be mutated through reconciliation actions and
// stays within [0, TargetAmount] after every mutation.
type Goal struct {
	ID            string    `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	TargetAmount  Money     `json:"target_amount" yaml:"target_amount"`
	CurrentAmount Money     `json:"current_amount" yaml:"current_amount"`
	TargetDate    time.Time `json:"target_date" yaml:"target_date"`
	Category      string    `json:"category" yaml:"category"`
}

// IsEmergencyFund reports whether this goal is the conventional emergency
// fund: the goal whose category equals "Emergency". Its balance acts as a
// source/sink for internal transfers.
func (g Goal) IsEmergencyFund() bool {
	return g.Category == CategoryEmergency
}

// Remaining returns how much is still needed to reach the target
func (g Goal) Remaining() Money {
	remaining, err := g.TargetAmount.Sub(g.CurrentAmount)
	if err != nil {
		return ZeroMoney(g.TargetAmount.Currency)
	}
	return remaining
}

// IsComplete returns true once the current amount has reached the target
func (g Goal) IsComplete() bool {
	return g.CurrentAmount.Amount.GreaterThanOrEqual(g.TargetAmount.Amount)
}

// Validate checks the structural invariants of a goal
func (g Goal) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("goal title is required")
	}
	if !g.TargetAmount.IsPositive() {
		return fmt.Errorf("goal target amount must be positive, got %s", g.TargetAmount)
	}
	if g.CurrentAmount.IsNegative() {
		return fmt.Errorf("goal current amount must not be negative, got %s", g.CurrentAmount)
	}
	if g.CurrentAmount.Amount.GreaterThan(g.TargetAmount.Amount) {
		return fmt.Errorf("goal current amount %s exceeds target %s", g.CurrentAmount, g.TargetAmount)
	}
	return nil
}
