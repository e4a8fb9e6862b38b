// Package budget computes read-side spending aggregates for budgets. The
// amount spent against a budget is always derived from the transaction log;
// it is never stored or independently mutated.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrushi1881/fintrack/internal/models"
)

// Status classifies budget utilization.
type Status string

const (
	StatusUnder Status = "under"
	StatusNear  Status = "near"
	StatusOver  Status = "over"
)

// nearThreshold is the utilization fraction at which a budget is flagged
// as near its limit.
var nearThreshold = decimal.NewFromFloat(0.8)

// PeriodWindow returns the [start, end) window of the budget period
// containing now. Weeks start on Monday.
func PeriodWindow(period string, now time.Time) (time.Time, time.Time) {
	switch period {
	case models.PeriodWeekly:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
			AddDate(0, 0, -(weekday - 1))
		return start, start.AddDate(0, 0, 7)
	case models.PeriodYearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0)
	default: // monthly
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0)
	}
}

// Spent sums the expense transactions matching the budget's category inside
// the current period window. Internal transfers never count against a
// budget even if a budget category happens to collide with the reserved
// name.
func Spent(b models.Budget, transactions []models.Transaction, now time.Time) models.Money {
	start, end := PeriodWindow(b.Period, now)
	total := models.ZeroMoney(b.Amount.Currency)

	for _, tx := range transactions {
		if !tx.IsExpense() || tx.Category != b.Category {
			continue
		}
		if tx.Category == models.CategoryInternalTransfer {
			continue
		}
		if tx.Date.Before(start) || !tx.Date.Before(end) {
			continue
		}
		if tx.Amount.Currency != total.Currency {
			continue
		}
		added, err := total.Add(tx.Amount)
		if err != nil {
			continue
		}
		total = added
	}
	return total
}

// Utilization returns spent/amount as a decimal fraction. A zero budget
// amount yields zero rather than dividing.
func Utilization(b models.Budget, spent models.Money) decimal.Decimal {
	if b.Amount.Amount.IsZero() {
		return decimal.Zero
	}
	return spent.Amount.Div(b.Amount.Amount)
}

// Classify maps a utilization fraction to a Status.
func Classify(utilization decimal.Decimal) Status {
	switch {
	case utilization.GreaterThan(decimal.NewFromInt(1)):
		return StatusOver
	case utilization.GreaterThanOrEqual(nearThreshold):
		return StatusNear
	default:
		return StatusUnder
	}
}

// Report summarizes one budget against the transaction log.
type Report struct {
	Budget      models.Budget
	Spent       models.Money
	Utilization decimal.Decimal
	Status      Status
}

// Summarize builds reports for all budgets from the transaction log.
func Summarize(budgets []models.Budget, transactions []models.Transaction, now time.Time) []Report {
	reports := make([]Report, 0, len(budgets))
	for _, b := range budgets {
		spent := Spent(b, transactions, now)
		utilization := Utilization(b, spent)
		reports = append(reports, Report{
			Budget:      b,
			Spent:       spent,
			Utilization: utilization,
			Status:      Classify(utilization),
		})
	}
	return reports
}
