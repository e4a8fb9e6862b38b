// Package budget handles budget commands.
package budget

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hrushi1881/fintrack/cmd/root"
	"github.com/hrushi1881/fintrack/internal/budget"
	"github.com/hrushi1881/fintrack/internal/models"
)

var (
	category string
	amount   string
	period   string
)

// Cmd represents the budget command group.
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage category budgets",
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Create a budget for a category",
	RunE:  setFunc,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show spending against each budget",
	Long: `Show how much of each budget has been spent in the current period.
Spent amounts are derived from the transaction log, never stored.`,
	RunE: statusFunc,
}

func init() {
	setCmd.Flags().StringVarP(&category, "category", "c", "", "Budget category")
	setCmd.Flags().StringVarP(&amount, "amount", "a", "", "Budget amount")
	setCmd.Flags().StringVarP(&period, "period", "p", models.PeriodMonthly, "Period (weekly, monthly, yearly)")
	_ = setCmd.MarkFlagRequired("category")
	_ = setCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(statusCmd)
}

func setFunc(cmd *cobra.Command, args []string) error {
	money, err := models.NewMoneyFromString(amount, root.Cfg.Currency.Default)
	if err != nil {
		return err
	}
	b := models.Budget{
		ID:       uuid.NewString(),
		Category: category,
		Amount:   money,
		Period:   period,
	}
	if err := b.Validate(); err != nil {
		return err
	}

	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	created, err := db.CreateBudget(cmd.Context(), b)
	if err != nil {
		return err
	}
	root.Log.WithField("category", created.Category).Info(fmt.Sprintf("Budget set: %s per %s", created.Amount, created.Period))
	return nil
}

func statusFunc(cmd *cobra.Command, args []string) error {
	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	budgets, err := db.ListBudgets(cmd.Context())
	if err != nil {
		return err
	}
	transactions, err := db.ListTransactions(cmd.Context())
	if err != nil {
		return err
	}

	for _, report := range budget.Summarize(budgets, transactions, time.Now()) {
		fmt.Printf("%-20s %s / %s (%s, %s)\n",
			report.Budget.Category, report.Spent, report.Budget.Amount,
			report.Budget.Period, report.Status)
	}
	return nil
}
