// Package recurring materializes recurring-transaction templates into
// AddTransaction actions for the reconciliation engine. Templates produce
// transactions; they are not themselves part of reconciliation.
package recurring

import (
	"time"

	"github.com/hrushi1881/fintrack/internal/ledger"
	"github.com/hrushi1881/fintrack/internal/models"
)

// NextRun returns the materialization date following from.
func NextRun(frequency string, from time.Time) time.Time {
	switch frequency {
	case models.FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default: // monthly
		return from.AddDate(0, 1, 0)
	}
}

// Due reports whether the template should materialize at now. A template
// that has never run is due once its start date passes; afterwards it is
// due one frequency-step after its last run. Expired templates are never
// due.
func Due(rt models.RecurringTransaction, now time.Time) bool {
	if rt.Expired(now) {
		return false
	}
	if now.Before(rt.StartDate) {
		return false
	}
	if rt.LastRun.IsZero() {
		return true
	}
	return !now.Before(NextRun(rt.Frequency, rt.LastRun))
}

// Materialize builds the AddTransaction action for one due occurrence. The
// produced transaction carries the template's ID so edits and deletes can
// trace it back.
func Materialize(rt models.RecurringTransaction, now time.Time) ledger.AddTransaction {
	return ledger.AddTransaction{
		Type:                   rt.Type,
		Amount:                 rt.Amount,
		Category:               rt.Category,
		Description:            rt.Description,
		Date:                   now,
		RecurringTransactionID: rt.ID,
	}
}
