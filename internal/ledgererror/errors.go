// Package ledgererror defines the typed errors surfaced by the ledger
// reconciliation engine and its collaborators.
package ledgererror

import "fmt"

// ValidationError represents a rejected action. It is raised before any
// persistence call, so no state has changed when the caller sees it.
type ValidationError struct {
	Action string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: invalid %s: %s", e.Action, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Action, e.Reason)
}

// PersistenceError represents a failed write to the persistence collaborator.
// Steps applied before the failing one remain applied; AppliedSteps tells the
// caller how far the action got so it can report a partial outcome.
type PersistenceError struct {
	Action       string
	Step         string
	AppliedSteps int
	Err          error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: step %q failed after %d applied step(s): %v",
		e.Action, e.Step, e.AppliedSteps, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// OverpaymentDeclinedError is returned when a liability payment exceeds the
// remaining balance and the user declines the clamp confirmation. The whole
// action is a no-op: nothing was persisted.
type OverpaymentDeclinedError struct {
	LiabilityID string
	Requested   string
	Remaining   string
}

func (e *OverpaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment of %s exceeds remaining balance %s on liability %s and was declined",
		e.Requested, e.Remaining, e.LiabilityID)
}

// NotFoundError represents a referenced entity that does not exist in the store.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// AdvisoryError represents a failure of an optional advisory service
// (categorization or insights). It is never propagated as a reconciliation
// failure; callers fall back to the local computation.
type AdvisoryError struct {
	Service string
	Err     error
}

func (e *AdvisoryError) Error() string {
	return fmt.Sprintf("%s advisory service failed: %v", e.Service, e.Err)
}

func (e *AdvisoryError) Unwrap() error {
	return e.Err
}
