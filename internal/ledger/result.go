package ledger

import "github.com/hrushi1881/fintrack/internal/models"

// Entity kinds referenced in balance mutations.
const (
	EntityGoal      = "goal"
	EntityLiability = "liability"
)

// BalanceMutation records one applied balance change so callers can render
// what happened without re-reading the store.
type BalanceMutation struct {
	Entity string       `json:"entity"`
	ID     string       `json:"id"`
	Before models.Money `json:"before"`
	After  models.Money `json:"after"`
}

// Delta returns the signed change the mutation applied.
func (m BalanceMutation) Delta() models.Money {
	delta, err := m.After.Sub(m.Before)
	if err != nil {
		return models.ZeroMoney(m.After.Currency)
	}
	return delta
}

// Result describes the complete outcome of one reconciled action: every
// transaction written to the log and every balance mutation applied, in the
// order they were executed.
type Result struct {
	Action       string            `json:"action"`
	Transactions []models.Transaction `json:"transactions,omitempty"`
	Mutations    []BalanceMutation `json:"mutations,omitempty"`

	// Liability holds the created liability for AddLiability actions.
	Liability *models.Liability `json:"liability,omitempty"`
}

// TransactionCount returns the number of transaction-log entries the action
// produced. Tracking-only goal additions and purchase liabilities produce
// zero; every other reconciled action produces exactly one.
func (r Result) TransactionCount() int {
	return len(r.Transactions)
}
