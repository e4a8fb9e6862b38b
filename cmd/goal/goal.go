// Package goal handles goal creation and goal transfer commands.
package goal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hrushi1881/fintrack/cmd/root"
	"github.com/hrushi1881/fintrack/internal/ledger"
	"github.com/hrushi1881/fintrack/internal/models"
)

var (
	title         string
	target        string
	targetDate    string
	category      string
	goalID        string
	amount        string
	fromEmergency bool
	trackingOnly  bool
)

// Cmd represents the goal command group.
var Cmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage savings goals and goal transfers",
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new savings goal",
	RunE:  createFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add money to a goal",
	Long: `Add money to a goal, clamped at its target. By default the addition
is deducted from your cash balance and recorded as a Savings expense.
--tracking-only changes the balance without recording any transaction;
--from-emergency funds the addition from the emergency fund instead and
records a single Internal Transfer.`,
	RunE: addFunc,
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw money from a goal",
	Long: `Withdraw money from a goal, floored at zero. The withdrawal is
recorded as Goal Withdrawal income, or as an Internal Transfer when the
money moves back into the emergency fund with --from-emergency.`,
	RunE: withdrawFunc,
}

func init() {
	createCmd.Flags().StringVarP(&title, "title", "t", "", "Goal title")
	createCmd.Flags().StringVarP(&target, "target", "a", "", "Target amount")
	createCmd.Flags().StringVarP(&targetDate, "date", "d", "", "Target date (YYYY-MM-DD)")
	createCmd.Flags().StringVarP(&category, "category", "c", "", "Goal category (\"Emergency\" marks the emergency fund)")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("target")

	for _, c := range []*cobra.Command{addCmd, withdrawCmd} {
		c.Flags().StringVarP(&goalID, "goal", "g", "", "Goal ID")
		c.Flags().StringVarP(&amount, "amount", "a", "", "Amount")
		c.Flags().BoolVar(&fromEmergency, "from-emergency", false, "Transfer against the emergency fund")
		_ = c.MarkFlagRequired("goal")
		_ = c.MarkFlagRequired("amount")
	}
	addCmd.Flags().BoolVar(&trackingOnly, "tracking-only", false, "Change the balance without recording a transaction")

	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(withdrawCmd)
}

func createFunc(cmd *cobra.Command, args []string) error {
	money, err := models.NewMoneyFromString(target, root.Cfg.Currency.Default)
	if err != nil {
		return err
	}
	var due time.Time
	if targetDate != "" {
		due, err = time.Parse("2006-01-02", targetDate)
		if err != nil {
			return fmt.Errorf("invalid target date: %w", err)
		}
	}

	goal := models.Goal{
		ID:            uuid.NewString(),
		Title:         title,
		TargetAmount:  money,
		CurrentAmount: models.ZeroMoney(money.Currency),
		TargetDate:    due,
		Category:      category,
	}
	if err := goal.Validate(); err != nil {
		return err
	}

	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	created, err := db.CreateGoal(cmd.Context(), goal)
	if err != nil {
		return err
	}
	root.Log.WithField("goal_id", created.ID).Info(fmt.Sprintf("Created goal %q with target %s", created.Title, created.TargetAmount))
	return nil
}

func transfer(cmd *cobra.Command, direction ledger.TransferDirection) error {
	money, err := models.NewMoneyFromString(amount, root.Cfg.Currency.Default)
	if err != nil {
		return err
	}

	source := ledger.SourceManual
	if fromEmergency {
		source = ledger.SourceEmergencyFund
	}

	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	engine := root.NewEngine(db, nil)

	result, err := engine.Reconcile(cmd.Context(), ledger.GoalTransfer{
		GoalID:            goalID,
		Amount:            money,
		Direction:         direction,
		Source:            source,
		DeductFromBalance: !trackingOnly,
		Date:              time.Now(),
	})
	if err != nil {
		return err
	}

	for _, m := range result.Mutations {
		root.Log.Info(fmt.Sprintf("Updated %s %s: %s -> %s", m.Entity, m.ID, m.Before, m.After))
	}
	if result.TransactionCount() == 0 {
		root.Log.Info("Tracking-only change: no transaction recorded")
	}
	for _, tx := range result.Transactions {
		root.Log.WithField("transaction_id", tx.ID).Info(fmt.Sprintf("Recorded %s %s (%s)", tx.Type, tx.Amount, tx.Category))
	}
	return nil
}

func addFunc(cmd *cobra.Command, args []string) error {
	return transfer(cmd, ledger.DirectionAdd)
}

func withdrawFunc(cmd *cobra.Command, args []string) error {
	return transfer(cmd, ledger.DirectionWithdraw)
}
