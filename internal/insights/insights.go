// Package insights produces the financial health report: a summary, a
// forecast narrative, up to three recommendations, and a 0-100 health
// score. An optional AI generator can write the narrative; on any failure
// the local rule-based generator answers with the same report shape, so
// callers cannot distinguish the source.
package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrushi1881/fintrack/internal/budget"
	"github.com/hrushi1881/fintrack/internal/ledgererror"
	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/models"
)

// Metrics are the aggregate inputs to the health report.
type Metrics struct {
	MonthlyIncome       models.Money    `json:"monthly_income"`
	MonthlyExpenses     models.Money    `json:"monthly_expenses"`
	TotalDebt           models.Money    `json:"total_debt"`
	MonthlyDebtPayments models.Money    `json:"monthly_debt_payments"`
	BudgetUtilization   decimal.Decimal `json:"budget_utilization"`
	HasBudgets          bool            `json:"has_budgets"`
}

// Report is the health report shape shared by the AI and local generators.
type Report struct {
	Summary         string   `json:"summary"`
	Forecast        string   `json:"forecast"`
	Recommendations []string `json:"recommendations"`
	HealthScore     int      `json:"health_score"`
}

// Generator produces a report from metrics.
type Generator interface {
	Generate(ctx context.Context, m Metrics) (Report, error)
}

// ComputeMetrics aggregates the month's transactions, the liability book,
// and the budget reports into Metrics. Internal transfers are excluded
// from cash flow: they move money between tracked balances, not in or out
// of the user's cash position.
func ComputeMetrics(transactions []models.Transaction, liabilities []models.Liability,
	reports []budget.Report, currency string, now time.Time) Metrics {

	start, end := budget.PeriodWindow(models.PeriodMonthly, now)
	income := models.ZeroMoney(currency)
	expenses := models.ZeroMoney(currency)
	for _, tx := range transactions {
		if tx.Category == models.CategoryInternalTransfer {
			continue
		}
		if tx.Date.Before(start) || !tx.Date.Before(end) {
			continue
		}
		if tx.Amount.Currency != currency {
			continue
		}
		if tx.IsIncome() {
			income, _ = income.Add(tx.Amount)
		} else {
			expenses, _ = expenses.Add(tx.Amount)
		}
	}

	totalDebt := models.ZeroMoney(currency)
	debtPayments := models.ZeroMoney(currency)
	for _, l := range liabilities {
		if l.RemainingAmount.Currency != currency {
			continue
		}
		totalDebt, _ = totalDebt.Add(l.RemainingAmount)
		if !l.IsPaidOff() {
			debtPayments, _ = debtPayments.Add(l.MonthlyPayment)
		}
	}

	utilization := decimal.Zero
	if len(reports) > 0 {
		for _, r := range reports {
			utilization = utilization.Add(r.Utilization)
		}
		utilization = utilization.Div(decimal.NewFromInt(int64(len(reports))))
	}

	return Metrics{
		MonthlyIncome:       income,
		MonthlyExpenses:     expenses,
		TotalDebt:           totalDebt,
		MonthlyDebtPayments: debtPayments,
		BudgetUtilization:   utilization,
		HasBudgets:          len(reports) > 0,
	}
}

// LocalGenerator is the rule-based report generator. It never fails.
type LocalGenerator struct{}

// Generate builds the report from the metrics alone.
func (LocalGenerator) Generate(_ context.Context, m Metrics) (Report, error) {
	score := HealthScore(m)
	rate := SavingsRate(m.MonthlyIncome.Amount, m.MonthlyExpenses.Amount)
	dti := DebtToIncome(m.MonthlyDebtPayments.Amount, m.MonthlyIncome.Amount)

	summary := fmt.Sprintf("This month you earned %s and spent %s", m.MonthlyIncome, m.MonthlyExpenses)
	if m.TotalDebt.IsPositive() {
		summary += fmt.Sprintf(", with %s of outstanding debt", m.TotalDebt)
	}
	summary += "."

	var forecast string
	net := m.MonthlyIncome.Amount.Sub(m.MonthlyExpenses.Amount)
	switch {
	case net.IsPositive():
		forecast = fmt.Sprintf("At the current pace you will set aside about %s per month.",
			models.NewMoney(net, m.MonthlyIncome.Currency))
	case net.IsNegative():
		forecast = fmt.Sprintf("You are spending about %s more than you earn each month; at this pace reserves will shrink.",
			models.NewMoney(net.Neg(), m.MonthlyIncome.Currency))
	default:
		forecast = "Income and spending are balanced; nothing is being set aside."
	}

	var recommendations []string
	if rate.LessThan(fullSavingsRate) {
		recommendations = append(recommendations, "Increase your savings rate toward 20% of income.")
	}
	if dti.GreaterThan(lowDebtRatio) {
		recommendations = append(recommendations, "Pay down high-interest debt to reduce your debt-to-income ratio.")
	}
	if m.HasBudgets && m.BudgetUtilization.GreaterThan(lowUtilization) {
		recommendations = append(recommendations, "Several budgets are near or over their limits; review category spending.")
	}
	if !m.HasBudgets {
		recommendations = append(recommendations, "Set category budgets to track where your money goes.")
	}
	if len(recommendations) > 3 {
		recommendations = recommendations[:3]
	}

	return Report{
		Summary:         summary,
		Forecast:        forecast,
		Recommendations: recommendations,
		HealthScore:     score,
	}, nil
}

// Service wraps an optional AI generator with the local fallback.
type Service struct {
	ai     Generator
	local  LocalGenerator
	logger logging.Logger
}

// NewService creates an insights service. A nil ai generator means the
// local computation always answers.
func NewService(ai Generator, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Service{ai: ai, logger: logger}
}

// Report produces the health report. AI failures are invisible to the
// caller: the local generator answers instead, and the health score always
// comes from the local computation so it cannot drift from the documented
// point ranges.
func (s *Service) Report(ctx context.Context, m Metrics) Report {
	if s.ai != nil {
		report, err := s.ai.Generate(ctx, m)
		if err == nil {
			report.HealthScore = HealthScore(m)
			if len(report.Recommendations) > 3 {
				report.Recommendations = report.Recommendations[:3]
			}
			return report
		}
		s.logger.WithError(&ledgererror.AdvisoryError{Service: "insights", Err: err}).
			Warn("AI insights generation failed, using local fallback")
	}
	report, _ := s.local.Generate(ctx, m)
	return report
}
