package ledger

import (
	"time"

	"github.com/hrushi1881/fintrack/internal/ledgererror"
	"github.com/hrushi1881/fintrack/internal/models"
)

// Action is one user-initiated financial action. The set of variants is
// closed: every kind the engine understands is declared in this file and
// dispatched in exactly one place (Engine.Reconcile), so the balance
// invariants are enforced in a single location instead of being repeated at
// every call site.
type Action interface {
	Kind() string
	validate() error
}

// TransferDirection indicates whether a goal transfer adds to or withdraws
// from the goal balance.
type TransferDirection string

const (
	DirectionAdd      TransferDirection = "add"
	DirectionWithdraw TransferDirection = "withdraw"
)

// TransferSource indicates where the money for a goal transfer comes from.
type TransferSource string

const (
	SourceManual        TransferSource = "manual"
	SourceEmergencyFund TransferSource = "emergency_fund"
)

// AddTransaction records a new income or expense transaction. If the user
// tagged the transaction as a payment toward a goal or a liability, the
// tagged balance is adjusted as a side effect: a goal's current amount is
// bumped (capped at its target), a liability's remaining amount is reduced
// (floored at zero). At most one tag may be set.
type AddTransaction struct {
	Type        string
	Amount      models.Money
	Category    string
	Description string
	Date        time.Time

	// GoalID and LiabilityID are optional payment tags; at most one is set.
	GoalID      string
	LiabilityID string

	// ParentTransactionID marks this entry as part of a split transaction.
	ParentTransactionID string

	// RecurringTransactionID links a materialized recurring transaction to
	// its template.
	RecurringTransactionID string
}

// Kind returns the action kind name.
func (a AddTransaction) Kind() string { return "AddTransaction" }

func (a AddTransaction) validate() error {
	if a.Type != models.TransactionTypeIncome && a.Type != models.TransactionTypeExpense {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "type", Reason: "must be income or expense"}
	}
	if !a.Amount.IsPositive() {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "amount", Reason: "must be positive"}
	}
	if a.Date.IsZero() {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "date", Reason: "is required"}
	}
	if a.GoalID != "" && a.LiabilityID != "" {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "tag", Reason: "cannot tag both a goal and a liability"}
	}
	return nil
}

// GoalTransfer moves money into or out of a goal balance. With the
// emergency-fund source the equal-and-opposite delta is applied to the
// emergency fund goal and exactly one "Internal Transfer" transaction is
// recorded. With the manual source, an add is paired with an expense
// transaction only when DeductFromBalance is set (otherwise it is a
// tracking-only balance change), and a withdraw is always paired with an
// income transaction.
type GoalTransfer struct {
	GoalID            string
	Amount            models.Money
	Direction         TransferDirection
	Source            TransferSource
	DeductFromBalance bool
	Date              time.Time
}

// Kind returns the action kind name.
func (a GoalTransfer) Kind() string { return "GoalTransfer" }

func (a GoalTransfer) validate() error {
	if a.GoalID == "" {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "goalId", Reason: "is required"}
	}
	if !a.Amount.IsPositive() {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "amount", Reason: "must be positive"}
	}
	if a.Direction != DirectionAdd && a.Direction != DirectionWithdraw {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "direction", Reason: "must be add or withdraw"}
	}
	if a.Source != SourceManual && a.Source != SourceEmergencyFund {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "source", Reason: "must be manual or emergency_fund"}
	}
	return nil
}

// LiabilityPayment pays down a liability. The payment is clamped to the
// remaining balance; an overpayment requires explicit confirmation through
// the engine's Confirmer before the clamped amount is applied, and a
// declined confirmation aborts the whole action with nothing persisted.
type LiabilityPayment struct {
	LiabilityID       string
	Amount            models.Money
	CreateTransaction bool
	Date              time.Time
}

// Kind returns the action kind name.
func (a LiabilityPayment) Kind() string { return "LiabilityPayment" }

func (a LiabilityPayment) validate() error {
	if a.LiabilityID == "" {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "liabilityId", Reason: "is required"}
	}
	if !a.Amount.IsPositive() {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "amount", Reason: "must be positive"}
	}
	return nil
}

// AddLiability creates a new liability. For non-purchase types the user may
// record the borrowed cash as income; purchase liabilities never create an
// income transaction because the cash was already spent, and may instead be
// linked to the existing purchase transaction.
type AddLiability struct {
	Liability   models.Liability
	AddAsIncome bool
	Date        time.Time
}

// Kind returns the action kind name.
func (a AddLiability) Kind() string { return "AddLiability" }

func (a AddLiability) validate() error {
	l := a.Liability
	if l.RemainingAmount.Currency == "" && l.RemainingAmount.Amount.IsZero() {
		// New liabilities start with the full amount outstanding.
		l.RemainingAmount = l.TotalAmount
	}
	if err := l.Validate(); err != nil {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "liability", Reason: err.Error()}
	}
	if l.LinkedPurchaseID != "" && !l.IsPurchase() {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "linkedPurchaseId", Reason: "only purchase liabilities can link to a transaction"}
	}
	return nil
}

// EditTransaction updates fields of an existing transaction. Prior goal or
// liability side effects tied to the transaction are NOT re-run or
// reversed; the edit touches the transaction record only.
type EditTransaction struct {
	ID    string
	Patch TransactionPatch
}

// Kind returns the action kind name.
func (a EditTransaction) Kind() string { return "EditTransaction" }

func (a EditTransaction) validate() error {
	if a.ID == "" {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "id", Reason: "is required"}
	}
	if a.Patch.Type != nil &&
		*a.Patch.Type != models.TransactionTypeIncome && *a.Patch.Type != models.TransactionTypeExpense {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "type", Reason: "must be income or expense"}
	}
	if a.Patch.Amount != nil && !a.Patch.Amount.IsPositive() {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "amount", Reason: "must be positive"}
	}
	return nil
}

// DeleteTransaction removes a transaction from the log. As with edits, any
// goal or liability mutation the transaction was paired with is left in
// place.
type DeleteTransaction struct {
	ID string
}

// Kind returns the action kind name.
func (a DeleteTransaction) Kind() string { return "DeleteTransaction" }

func (a DeleteTransaction) validate() error {
	if a.ID == "" {
		return &ledgererror.ValidationError{Action: a.Kind(), Field: "id", Reason: "is required"}
	}
	return nil
}
