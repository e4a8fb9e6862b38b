// Package liability handles liability creation and payment commands.
package liability

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hrushi1881/fintrack/cmd/root"
	"github.com/hrushi1881/fintrack/internal/ledger"
	"github.com/hrushi1881/fintrack/internal/models"
)

var (
	name            string
	liabilityType   string
	total           string
	interestRate    string
	monthlyPayment  string
	dueDate         string
	linkedPurchase  string
	addAsIncome     bool
	liabilityID     string
	amount          string
	skipTransaction bool
	assumeYes       bool
)

// Cmd represents the liability command group.
var Cmd = &cobra.Command{
	Use:   "liability",
	Short: "Manage liabilities and debt payments",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new liability",
	Long: `Add a liability. Non-purchase liabilities can record the borrowed
cash as Loan income with --as-income. Purchase liabilities never record
income (the cash was already spent) and may instead link the original
purchase transaction with --linked-purchase.`,
	RunE: addFunc,
}

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Make a payment toward a liability",
	Long: `Pay down a liability. Payments above the remaining balance prompt
for confirmation and are clamped to the remaining amount; declining leaves
everything untouched.`,
	RunE: payFunc,
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Liability name")
	addCmd.Flags().StringVarP(&liabilityType, "type", "t", models.LiabilityTypeLoan, "Type (loan, credit_card, mortgage, purchase, other)")
	addCmd.Flags().StringVarP(&total, "total", "a", "", "Total amount owed")
	addCmd.Flags().StringVarP(&interestRate, "rate", "r", "0", "Annual interest rate (percent)")
	addCmd.Flags().StringVarP(&monthlyPayment, "monthly", "m", "0", "Monthly payment")
	addCmd.Flags().StringVarP(&dueDate, "due", "d", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&linkedPurchase, "linked-purchase", "", "Existing purchase transaction to link (purchase type only)")
	addCmd.Flags().BoolVar(&addAsIncome, "as-income", false, "Record the borrowed amount as income")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("total")

	payCmd.Flags().StringVarP(&liabilityID, "liability", "l", "", "Liability ID")
	payCmd.Flags().StringVarP(&amount, "amount", "a", "", "Payment amount")
	payCmd.Flags().BoolVar(&skipTransaction, "no-transaction", false, "Reduce the balance without recording an expense")
	payCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Confirm overpayment clamping without prompting")
	_ = payCmd.MarkFlagRequired("liability")
	_ = payCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(payCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	totalMoney, err := models.NewMoneyFromString(total, root.Cfg.Currency.Default)
	if err != nil {
		return err
	}
	rate, err := decimal.NewFromString(interestRate)
	if err != nil {
		return fmt.Errorf("invalid interest rate: %w", err)
	}
	monthly, err := models.NewMoneyFromString(monthlyPayment, root.Cfg.Currency.Default)
	if err != nil {
		return fmt.Errorf("invalid monthly payment: %w", err)
	}
	var due time.Time
	if dueDate != "" {
		due, err = time.Parse("2006-01-02", dueDate)
		if err != nil {
			return fmt.Errorf("invalid due date: %w", err)
		}
	}

	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	engine := root.NewEngine(db, nil)

	result, err := engine.Reconcile(cmd.Context(), ledger.AddLiability{
		Liability: models.Liability{
			ID:               uuid.NewString(),
			Name:             name,
			Type:             liabilityType,
			TotalAmount:      totalMoney,
			RemainingAmount:  totalMoney,
			InterestRate:     rate,
			MonthlyPayment:   monthly,
			DueDate:          due,
			StartDate:        time.Now(),
			LinkedPurchaseID: linkedPurchase,
		},
		AddAsIncome: addAsIncome,
		Date:        time.Now(),
	})
	if err != nil {
		return err
	}

	root.Log.WithField("liability_id", result.Liability.ID).Info(fmt.Sprintf("Added liability %q (%s owed)", result.Liability.Name, result.Liability.RemainingAmount))
	for _, tx := range result.Transactions {
		root.Log.WithField("transaction_id", tx.ID).Info(fmt.Sprintf("Recorded %s %s (%s)", tx.Type, tx.Amount, tx.Category))
	}
	return nil
}

// promptConfirmer asks on stdin before clamping an overpayment.
func promptConfirmer(liability models.Liability, requested models.Money) bool {
	fmt.Printf("Payment of %s exceeds the remaining balance of %s on %q.\n",
		requested, liability.RemainingAmount, liability.Name)
	fmt.Printf("Pay %s instead? [y/N]: ", liability.RemainingAmount)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func payFunc(cmd *cobra.Command, args []string) error {
	money, err := models.NewMoneyFromString(amount, root.Cfg.Currency.Default)
	if err != nil {
		return err
	}

	confirmer := ledger.ConfirmerFunc(promptConfirmer)
	if assumeYes {
		confirmer = func(models.Liability, models.Money) bool { return true }
	}

	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	engine := root.NewEngine(db, confirmer)

	result, err := engine.Reconcile(cmd.Context(), ledger.LiabilityPayment{
		LiabilityID:       liabilityID,
		Amount:            money,
		CreateTransaction: !skipTransaction,
		Date:              time.Now(),
	})
	if err != nil {
		return err
	}

	for _, m := range result.Mutations {
		root.Log.Info(fmt.Sprintf("Updated %s %s: %s -> %s", m.Entity, m.ID, m.Before, m.After))
	}
	for _, tx := range result.Transactions {
		root.Log.WithField("transaction_id", tx.ID).Info(fmt.Sprintf("Recorded %s %s (%s)", tx.Type, tx.Amount, tx.Category))
	}
	return nil
}
