// Package insights handles the financial health report command.
package insights

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hrushi1881/fintrack/cmd/root"
	"github.com/hrushi1881/fintrack/internal/budget"
	"github.com/hrushi1881/fintrack/internal/insights"
)

// Cmd represents the insights command.
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Show the financial health report",
	Long: `Aggregate this month's cash flow, the liability book, and budget
utilization into a health report with a 0-100 score. The narrative comes
from the Gemini model when AI is enabled; otherwise (or on any AI failure)
a local rule-based report with the same shape is produced.`,
	RunE: insightsFunc,
}

func insightsFunc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := root.OpenStore()
	if err != nil {
		return err
	}

	transactions, err := db.ListTransactions(ctx)
	if err != nil {
		return err
	}
	liabilities, err := db.ListLiabilities(ctx)
	if err != nil {
		return err
	}
	budgets, err := db.ListBudgets(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	reports := budget.Summarize(budgets, transactions, now)
	metrics := insights.ComputeMetrics(transactions, liabilities, reports, root.Cfg.Currency.Default, now)

	var generator insights.Generator
	if root.Cfg.GetAIEnabled() {
		gemini, err := insights.NewGeminiGenerator(ctx, root.Cfg.GetAIAPIKey(), root.Cfg.GetAIModel(), root.Log)
		if err != nil {
			root.Log.WithError(err).Warn("Gemini unavailable, using local insights")
		} else {
			defer func() { _ = gemini.Close() }()
			generator = gemini
		}
	}

	report := insights.NewService(generator, root.Log).Report(ctx, metrics)

	fmt.Printf("Health score: %d/100\n\n", report.HealthScore)
	fmt.Println(report.Summary)
	fmt.Println(report.Forecast)
	for _, rec := range report.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
	return nil
}
