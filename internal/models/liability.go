package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Liability represents a debt the user is tracking: a loan, credit card,
// mortgage, financed purchase, or other obligation. RemainingAmount only
// decreases, via payment actions, and stays within [0, TotalAmount].
type Liability struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Type            string          `json:"type" yaml:"type"`
	TotalAmount     Money           `json:"total_amount" yaml:"total_amount"`
	RemainingAmount Money           `json:"remaining_amount" yaml:"remaining_amount"`
	InterestRate    decimal.Decimal `json:"interest_rate" yaml:"interest_rate"`
	MonthlyPayment  Money           `json:"monthly_payment" yaml:"monthly_payment"`
	DueDate         time.Time       `json:"due_date" yaml:"due_date"`
	StartDate       time.Time       `json:"start_date" yaml:"start_date"`

	// LinkedPurchaseID associates a purchase-type liability with the
	// expense transaction that already recorded the cash movement.
	LinkedPurchaseID string `json:"linked_purchase_id,omitempty" yaml:"linked_purchase_id,omitempty"`
}

// IsPurchase reports whether the liability is a financed purchase. The cash
// for a purchase was already spent, so creating it never records income.
func (l Liability) IsPurchase() bool {
	return l.Type == LiabilityTypePurchase
}

// IsPaidOff returns true once nothing remains to pay
func (l Liability) IsPaidOff() bool {
	return l.RemainingAmount.IsZero()
}

// Validate checks the structural invariants of a liability
func (l Liability) Validate() error {
	switch l.Type {
	case LiabilityTypeLoan, LiabilityTypeCreditCard, LiabilityTypeMortgage,
		LiabilityTypePurchase, LiabilityTypeOther:
	default:
		return fmt.Errorf("invalid liability type: %q", l.Type)
	}
	if l.Name == "" {
		return fmt.Errorf("liability name is required")
	}
	if !l.TotalAmount.IsPositive() {
		return fmt.Errorf("liability total amount must be positive, got %s", l.TotalAmount)
	}
	if l.RemainingAmount.IsNegative() {
		return fmt.Errorf("liability remaining amount must not be negative, got %s", l.RemainingAmount)
	}
	if l.RemainingAmount.Amount.GreaterThan(l.TotalAmount.Amount) {
		return fmt.Errorf("liability remaining amount %s exceeds total %s", l.RemainingAmount, l.TotalAmount)
	}
	return nil
}
