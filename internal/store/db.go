// Package store persists ledger entities in a local SQLite database and
// implements the persistence collaborator the reconciliation engine writes
// through.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hrushi1881/fintrack/internal/ledger"
	"github.com/hrushi1881/fintrack/internal/ledgererror"
	"github.com/hrushi1881/fintrack/internal/models"
)

// Database wraps a gorm connection and implements ledger.Store.
type Database struct {
	db *gorm.DB
}

// NewDatabase opens (or creates) the SQLite database at dbPath and migrates
// the schema.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(
		&transactionRow{}, &goalRow{}, &liabilityRow{}, &budgetRow{}, &recurringRow{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Database{db: db}, nil
}

// GetTransaction loads one transaction by its ledger ID.
func (d *Database) GetTransaction(ctx context.Context, id string) (models.Transaction, error) {
	var row transactionRow
	err := d.db.WithContext(ctx).Where("tx_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Transaction{}, &ledgererror.NotFoundError{Entity: "transaction", ID: id}
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to load transaction: %w", err)
	}
	return row.toModel()
}

// CreateTransaction persists a new transaction.
func (d *Database) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	row := transactionToRow(tx)
	if err := d.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Transaction{}, fmt.Errorf("failed to save transaction: %w", err)
	}
	return tx, nil
}

// UpdateTransaction applies a partial update to a transaction.
func (d *Database) UpdateTransaction(ctx context.Context, id string, patch ledger.TransactionPatch) error {
	updates := map[string]interface{}{}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Amount != nil {
		updates["amount"] = patch.Amount.Amount.String()
		updates["currency"] = patch.Amount.Currency
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if len(updates) == 0 {
		return nil
	}
	res := d.db.WithContext(ctx).Model(&transactionRow{}).Where("tx_id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &ledgererror.NotFoundError{Entity: "transaction", ID: id}
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (d *Database) DeleteTransaction(ctx context.Context, id string) error {
	res := d.db.WithContext(ctx).Where("tx_id = ?", id).Delete(&transactionRow{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &ledgererror.NotFoundError{Entity: "transaction", ID: id}
	}
	return nil
}

// ListTransactions returns the full transaction log, newest first.
func (d *Database) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var rows []transactionRow
	if err := d.db.WithContext(ctx).Order("date desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	txs := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := row.toModel()
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// GetGoal loads one goal by its ledger ID.
func (d *Database) GetGoal(ctx context.Context, id string) (models.Goal, error) {
	var row goalRow
	err := d.db.WithContext(ctx).Where("goal_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Goal{}, &ledgererror.NotFoundError{Entity: "goal", ID: id}
	}
	if err != nil {
		return models.Goal{}, fmt.Errorf("failed to load goal: %w", err)
	}
	return row.toModel()
}

// FindGoalByCategory returns the first goal in the given category. The
// engine uses it to resolve the emergency fund.
func (d *Database) FindGoalByCategory(ctx context.Context, category string) (models.Goal, error) {
	var row goalRow
	err := d.db.WithContext(ctx).Where("category = ?", category).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Goal{}, &ledgererror.NotFoundError{Entity: "goal", ID: "category=" + category}
	}
	if err != nil {
		return models.Goal{}, fmt.Errorf("failed to find goal by category: %w", err)
	}
	return row.toModel()
}

// CreateGoal persists a new goal.
func (d *Database) CreateGoal(ctx context.Context, g models.Goal) (models.Goal, error) {
	row := goalToRow(g)
	if err := d.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Goal{}, fmt.Errorf("failed to save goal: %w", err)
	}
	return g, nil
}

// UpdateGoal applies a partial update to a goal.
func (d *Database) UpdateGoal(ctx context.Context, id string, patch ledger.GoalPatch) error {
	updates := map[string]interface{}{}
	if patch.CurrentAmount != nil {
		updates["current_amount"] = patch.CurrentAmount.Amount.String()
	}
	if len(updates) == 0 {
		return nil
	}
	res := d.db.WithContext(ctx).Model(&goalRow{}).Where("goal_id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &ledgererror.NotFoundError{Entity: "goal", ID: id}
	}
	return nil
}

// ListGoals returns all goals.
func (d *Database) ListGoals(ctx context.Context) ([]models.Goal, error) {
	var rows []goalRow
	if err := d.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	goals := make([]models.Goal, 0, len(rows))
	for _, row := range rows {
		goal, err := row.toModel()
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

// GetLiability loads one liability by its ledger ID.
func (d *Database) GetLiability(ctx context.Context, id string) (models.Liability, error) {
	var row liabilityRow
	err := d.db.WithContext(ctx).Where("liability_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Liability{}, &ledgererror.NotFoundError{Entity: "liability", ID: id}
	}
	if err != nil {
		return models.Liability{}, fmt.Errorf("failed to load liability: %w", err)
	}
	return row.toModel()
}

// CreateLiability persists a new liability.
func (d *Database) CreateLiability(ctx context.Context, l models.Liability) (models.Liability, error) {
	row := liabilityToRow(l)
	if err := d.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Liability{}, fmt.Errorf("failed to save liability: %w", err)
	}
	return l, nil
}

// UpdateLiability applies a partial update to a liability.
func (d *Database) UpdateLiability(ctx context.Context, id string, patch ledger.LiabilityPatch) error {
	updates := map[string]interface{}{}
	if patch.RemainingAmount != nil {
		updates["remaining_amount"] = patch.RemainingAmount.Amount.String()
	}
	if patch.LinkedPurchaseID != nil {
		updates["linked_purchase_id"] = *patch.LinkedPurchaseID
	}
	if len(updates) == 0 {
		return nil
	}
	res := d.db.WithContext(ctx).Model(&liabilityRow{}).Where("liability_id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update liability: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &ledgererror.NotFoundError{Entity: "liability", ID: id}
	}
	return nil
}

// ListLiabilities returns all liabilities.
func (d *Database) ListLiabilities(ctx context.Context) ([]models.Liability, error) {
	var rows []liabilityRow
	if err := d.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	liabilities := make([]models.Liability, 0, len(rows))
	for _, row := range rows {
		l, err := row.toModel()
		if err != nil {
			return nil, err
		}
		liabilities = append(liabilities, l)
	}
	return liabilities, nil
}

// CreateBudget persists a new budget.
func (d *Database) CreateBudget(ctx context.Context, b models.Budget) (models.Budget, error) {
	row := budgetToRow(b)
	if err := d.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Budget{}, fmt.Errorf("failed to save budget: %w", err)
	}
	return b, nil
}

// ListBudgets returns all budgets.
func (d *Database) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	var rows []budgetRow
	if err := d.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	budgets := make([]models.Budget, 0, len(rows))
	for _, row := range rows {
		b, err := row.toModel()
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}

// CreateRecurring persists a new recurring transaction template.
func (d *Database) CreateRecurring(ctx context.Context, rt models.RecurringTransaction) (models.RecurringTransaction, error) {
	row := recurringToRow(rt)
	if err := d.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.RecurringTransaction{}, fmt.Errorf("failed to save recurring transaction: %w", err)
	}
	return rt, nil
}

// ListRecurring returns all recurring transaction templates.
func (d *Database) ListRecurring(ctx context.Context) ([]models.RecurringTransaction, error) {
	var rows []recurringRow
	if err := d.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}
	templates := make([]models.RecurringTransaction, 0, len(rows))
	for _, row := range rows {
		rt, err := row.toModel()
		if err != nil {
			return nil, err
		}
		templates = append(templates, rt)
	}
	return templates, nil
}

// MarkRecurringRun records the date a template last materialized.
func (d *Database) MarkRecurringRun(ctx context.Context, id string, lastRun time.Time) error {
	res := d.db.WithContext(ctx).Model(&recurringRow{}).
		Where("recurring_id = ?", id).
		Update("last_run", lastRun)
	if res.Error != nil {
		return fmt.Errorf("failed to update recurring transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &ledgererror.NotFoundError{Entity: "recurring transaction", ID: id}
	}
	return nil
}
