// Package transaction handles the transaction add/edit/delete commands.
package transaction

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hrushi1881/fintrack/cmd/root"
	"github.com/hrushi1881/fintrack/internal/ledger"
	"github.com/hrushi1881/fintrack/internal/models"
)

var (
	txType      string
	amount      string
	category    string
	description string
	date        string
	goalID      string
	liabilityID string
	editID      string
)

// Cmd represents the transaction command group.
var Cmd = &cobra.Command{
	Use:   "transaction",
	Short: "Record, edit, or delete transactions",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new income or expense transaction",
	Long: `Record a transaction. When no category is given, the categorizer
suggests one from the description. Tagging a goal or liability also adjusts
the tagged balance: goals are bumped (capped at their target), liabilities
reduced (floored at zero).`,
	RunE: addFunc,
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit an existing transaction",
	Long: `Edit a transaction's fields. Balance side effects from the original
reconciliation are not re-run or reversed.`,
	RunE: editFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a transaction",
	Long: `Delete a transaction. Balance side effects from the original
reconciliation are not reversed.`,
	Args: cobra.ExactArgs(1),
	RunE: deleteFunc,
}

func init() {
	addCmd.Flags().StringVarP(&txType, "type", "t", "", "Transaction type (income or expense)")
	addCmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount")
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Category (suggested from description when omitted)")
	addCmd.Flags().StringVarP(&description, "description", "m", "", "Description")
	addCmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&goalID, "goal", "", "Tag as a payment toward this goal")
	addCmd.Flags().StringVar(&liabilityID, "liability", "", "Tag as a payment toward this liability")
	_ = addCmd.MarkFlagRequired("amount")

	editCmd.Flags().StringVar(&editID, "id", "", "Transaction ID")
	editCmd.Flags().StringVarP(&txType, "type", "t", "", "New transaction type")
	editCmd.Flags().StringVarP(&amount, "amount", "a", "", "New amount")
	editCmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	editCmd.Flags().StringVarP(&description, "description", "m", "", "New description")
	editCmd.Flags().StringVarP(&date, "date", "d", "", "New date (YYYY-MM-DD)")
	_ = editCmd.MarkFlagRequired("id")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(deleteCmd)
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", value)
}

func addFunc(cmd *cobra.Command, args []string) error {
	when, err := parseDate(date)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}
	money, err := models.NewMoneyFromString(amount, root.Cfg.Currency.Default)
	if err != nil {
		return err
	}

	// Advisory pre-fill: never blocks submission, only fills gaps.
	if txType == "" || category == "" {
		suggestion := root.NewCategorizer(cmd.Context()).Suggest(cmd.Context(), description)
		if txType == "" {
			txType = suggestion.Type
		}
		if category == "" {
			category = suggestion.Category
		}
	}

	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	engine := root.NewEngine(db, nil)

	result, err := engine.Reconcile(cmd.Context(), ledger.AddTransaction{
		Type:        txType,
		Amount:      money,
		Category:    category,
		Description: description,
		Date:        when,
		GoalID:      goalID,
		LiabilityID: liabilityID,
	})
	if err != nil {
		return err
	}

	for _, tx := range result.Transactions {
		root.Log.WithField("transaction_id", tx.ID).Info(fmt.Sprintf("Recorded %s %s (%s)", tx.Type, tx.Amount, tx.Category))
	}
	for _, m := range result.Mutations {
		root.Log.Info(fmt.Sprintf("Updated %s %s: %s -> %s", m.Entity, m.ID, m.Before, m.After))
	}
	return nil
}

func editFunc(cmd *cobra.Command, args []string) error {
	var patch ledger.TransactionPatch
	if txType != "" {
		patch.Type = &txType
	}
	if amount != "" {
		money, err := models.NewMoneyFromString(amount, root.Cfg.Currency.Default)
		if err != nil {
			return err
		}
		patch.Amount = &money
	}
	if category != "" {
		patch.Category = &category
	}
	if description != "" {
		patch.Description = &description
	}
	if date != "" {
		when, err := parseDate(date)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		patch.Date = &when
	}

	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	engine := root.NewEngine(db, nil)

	if _, err := engine.Reconcile(cmd.Context(), ledger.EditTransaction{ID: editID, Patch: patch}); err != nil {
		return err
	}
	root.Log.WithField("transaction_id", editID).Info("Transaction updated")
	return nil
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	db, err := root.OpenStore()
	if err != nil {
		return err
	}
	engine := root.NewEngine(db, nil)

	if _, err := engine.Reconcile(cmd.Context(), ledger.DeleteTransaction{ID: args[0]}); err != nil {
		return err
	}
	root.Log.WithField("transaction_id", args[0]).Info("Transaction deleted")
	return nil
}
