package insights

import (
	"github.com/shopspring/decimal"
)

// Health-score point ranges. The score is a weighted combination of three
// clamped components and always lands in [0, 100].
const (
	savingsMaxPoints     = 40
	debtMaxPoints        = 30
	utilizationMaxPoints = 30
)

var (
	// Full savings points at a 20% savings rate.
	fullSavingsRate = decimal.NewFromFloat(0.20)
	// Full debt points at or below 10% debt-to-income; zero at 43% (the
	// conventional qualified-mortgage ceiling).
	lowDebtRatio  = decimal.NewFromFloat(0.10)
	highDebtRatio = decimal.NewFromFloat(0.43)
	// Full utilization points at or below 80% of budget; zero at 120%.
	lowUtilization  = decimal.NewFromFloat(0.80)
	highUtilization = decimal.NewFromFloat(1.20)
)

// SavingsRate returns (income - expenses) / income, or zero when there is
// no income.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income)
}

// DebtToIncome returns monthly debt payments / monthly income, or the high
// ceiling when there is no income but there is debt.
func DebtToIncome(debtPayments, income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		if debtPayments.IsPositive() {
			return highDebtRatio
		}
		return decimal.Zero
	}
	return debtPayments.Div(income)
}

// savingsPoints maps the savings rate linearly onto [0, 40]: zero or
// negative saving scores 0, a 20% rate or better scores the full 40.
func savingsPoints(rate decimal.Decimal) int {
	if !rate.IsPositive() {
		return 0
	}
	if rate.GreaterThanOrEqual(fullSavingsRate) {
		return savingsMaxPoints
	}
	points := rate.Div(fullSavingsRate).Mul(decimal.NewFromInt(savingsMaxPoints))
	return int(points.IntPart())
}

// debtPoints maps debt-to-income onto [0, 30]: at or below 10% scores the
// full 30, at or above 43% scores 0, linear in between.
func debtPoints(ratio decimal.Decimal) int {
	if ratio.LessThanOrEqual(lowDebtRatio) {
		return debtMaxPoints
	}
	if ratio.GreaterThanOrEqual(highDebtRatio) {
		return 0
	}
	span := highDebtRatio.Sub(lowDebtRatio)
	points := highDebtRatio.Sub(ratio).Div(span).Mul(decimal.NewFromInt(debtMaxPoints))
	return int(points.IntPart())
}

// utilizationPoints maps budget utilization onto [0, 30]: at or below 80%
// scores the full 30, at or above 120% scores 0, linear in between. A user
// with no budgets gets the full points.
func utilizationPoints(utilization decimal.Decimal, hasBudgets bool) int {
	if !hasBudgets {
		return utilizationMaxPoints
	}
	if utilization.LessThanOrEqual(lowUtilization) {
		return utilizationMaxPoints
	}
	if utilization.GreaterThanOrEqual(highUtilization) {
		return 0
	}
	span := highUtilization.Sub(lowUtilization)
	points := highUtilization.Sub(utilization).Div(span).Mul(decimal.NewFromInt(utilizationMaxPoints))
	return int(points.IntPart())
}

// HealthScore computes the 0-100 financial health score from the metrics.
func HealthScore(m Metrics) int {
	score := savingsPoints(SavingsRate(m.MonthlyIncome.Amount, m.MonthlyExpenses.Amount)) +
		debtPoints(DebtToIncome(m.MonthlyDebtPayments.Amount, m.MonthlyIncome.Amount)) +
		utilizationPoints(m.BudgetUtilization, m.HasBudgets)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
