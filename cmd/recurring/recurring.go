// Package recurring handles recurring-transaction commands.
package recurring

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hrushi1881/fintrack/cmd/root"
	"github.com/hrushi1881/fintrack/internal/ledger"
	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/models"
	recur "github.com/hrushi1881/fintrack/internal/recurring"
)

var (
	txType      string
	amount      string
	category    string
	description string
	frequency   string
	startDate   string
	endDate     string
)

// Cmd represents the recurring command group.
var Cmd = &cobra.Command{
	Use:   "recurring",
	Short: "Manage recurring transaction templates",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a recurring transaction template",
	RunE:  addFunc,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Materialize all due templates into transactions",
	Long: `Materialize all due templates into transactions via the
reconciliation engine. Each produced transaction records its template's
ID so it can be traced back later.`,
	RunE: runFunc,
}

func init() {
	addCmd.Flags().StringVarP(&txType, "type", "t", models.TransactionTypeExpense, "Transaction type (income or expense)")
	addCmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount per occurrence")
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Category")
	addCmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	addCmd.Flags().StringVarP(&frequency, "frequency", "f", models.FrequencyMonthly, "Frequency (daily, weekly, monthly, yearly)")
	addCmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	addCmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, optional)")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("category")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(runCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	money, err := models.NewMoneyFromString(amount, root.Cfg.Currency.Default)
	if err != nil {
		return err
	}

	start := time.Now()
	if startDate != "" {
		start, err = time.Parse("2006-01-02", startDate)
		if err != nil {
			return fmt.Errorf("invalid start date %q: %w", startDate, err)
		}
	}
	var end time.Time
	if endDate != "" {
		end, err = time.Parse("2006-01-02", endDate)
		if err != nil {
			return fmt.Errorf("invalid end date %q: %w", endDate, err)
		}
	}

	rt := models.RecurringTransaction{
		ID:          uuid.NewString(),
		Type:        txType,
		Amount:      money,
		Category:    category,
		Description: description,
		Frequency:   frequency,
		StartDate:   start,
		EndDate:     end,
	}
	if err := rt.Validate(); err != nil {
		return err
	}

	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	created, err := db.CreateRecurring(cmd.Context(), rt)
	if err != nil {
		return err
	}
	root.Log.WithField("id", created.ID).Info(fmt.Sprintf("Recurring %s created: %s %s every %s", created.Type, created.Amount, created.Category, created.Frequency))
	return nil
}

func runFunc(cmd *cobra.Command, args []string) error {
	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	engine := root.NewEngine(db, ledger.DeclineOverpayments)

	templates, err := db.ListRecurring(cmd.Context())
	if err != nil {
		return err
	}

	now := time.Now()
	ran := 0
	for _, rt := range templates {
		if !recur.Due(rt, now) {
			continue
		}
		result, err := engine.Reconcile(cmd.Context(), recur.Materialize(rt, now))
		if err != nil {
			return err
		}
		if err := db.MarkRecurringRun(cmd.Context(), rt.ID, now); err != nil {
			return err
		}
		for _, tx := range result.Transactions {
			fmt.Printf("%s: %s %s (%s)\n", rt.ID, tx.Type, tx.Amount, tx.Category)
		}
		ran++
	}
	root.Log.WithField(logging.FieldCount, ran).Info("Recurring run complete")
	return nil
}
