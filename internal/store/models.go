package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hrushi1881/fintrack/internal/models"
)

// Row types persisted through gorm. Monetary amounts are stored as exact
// decimal strings, never floats.

type transactionRow struct {
	gorm.Model
	TxID                   string `gorm:"uniqueIndex"`
	Type                   string
	Amount                 string
	Currency               string
	Category               string `gorm:"index"`
	Description            string
	Date                   time.Time `gorm:"index"`
	RecurringTransactionID string
	ParentTransactionID    string
}

type goalRow struct {
	gorm.Model
	GoalID        string `gorm:"uniqueIndex"`
	Title         string
	TargetAmount  string
	CurrentAmount string
	Currency      string
	TargetDate    time.Time
	Category      string `gorm:"index"`
}

type liabilityRow struct {
	gorm.Model
	LiabilityID      string `gorm:"uniqueIndex"`
	Name             string
	Type             string
	TotalAmount      string
	RemainingAmount  string
	Currency         string
	InterestRate     string
	MonthlyPayment   string
	DueDate          time.Time
	StartDate        time.Time
	LinkedPurchaseID string
}

type budgetRow struct {
	gorm.Model
	BudgetID string `gorm:"uniqueIndex"`
	Category string `gorm:"index"`
	Amount   string
	Currency string
	Period   string
}

type recurringRow struct {
	gorm.Model
	RecurringID string `gorm:"uniqueIndex"`
	Type        string
	Amount      string
	Currency    string
	Category    string
	Description string
	Frequency   string
	StartDate   time.Time
	EndDate     time.Time
	LastRun     time.Time
}

func parseAmount(field, value, currency string) (models.Money, error) {
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return models.Money{}, fmt.Errorf("corrupt %s value %q: %w", field, value, err)
	}
	return models.NewMoney(dec, currency), nil
}

func (r transactionRow) toModel() (models.Transaction, error) {
	amount, err := parseAmount("transaction amount", r.Amount, r.Currency)
	if err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		ID:                     r.TxID,
		Type:                   r.Type,
		Amount:                 amount,
		Category:               r.Category,
		Description:            r.Description,
		Date:                   r.Date,
		RecurringTransactionID: r.RecurringTransactionID,
		ParentTransactionID:    r.ParentTransactionID,
	}, nil
}

func transactionToRow(tx models.Transaction) transactionRow {
	return transactionRow{
		TxID:                   tx.ID,
		Type:                   tx.Type,
		Amount:                 tx.Amount.Amount.String(),
		Currency:               tx.Amount.Currency,
		Category:               tx.Category,
		Description:            tx.Description,
		Date:                   tx.Date,
		RecurringTransactionID: tx.RecurringTransactionID,
		ParentTransactionID:    tx.ParentTransactionID,
	}
}

func (r goalRow) toModel() (models.Goal, error) {
	target, err := parseAmount("goal target", r.TargetAmount, r.Currency)
	if err != nil {
		return models.Goal{}, err
	}
	current, err := parseAmount("goal balance", r.CurrentAmount, r.Currency)
	if err != nil {
		return models.Goal{}, err
	}
	return models.Goal{
		ID:            r.GoalID,
		Title:         r.Title,
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    r.TargetDate,
		Category:      r.Category,
	}, nil
}

func goalToRow(g models.Goal) goalRow {
	return goalRow{
		GoalID:        g.ID,
		Title:         g.Title,
		TargetAmount:  g.TargetAmount.Amount.String(),
		CurrentAmount: g.CurrentAmount.Amount.String(),
		Currency:      g.TargetAmount.Currency,
		TargetDate:    g.TargetDate,
		Category:      g.Category,
	}
}

func (r liabilityRow) toModel() (models.Liability, error) {
	total, err := parseAmount("liability total", r.TotalAmount, r.Currency)
	if err != nil {
		return models.Liability{}, err
	}
	remaining, err := parseAmount("liability balance", r.RemainingAmount, r.Currency)
	if err != nil {
		return models.Liability{}, err
	}
	monthly, err := parseAmount("monthly payment", r.MonthlyPayment, r.Currency)
	if err != nil {
		return models.Liability{}, err
	}
	rate, err := decimal.NewFromString(r.InterestRate)
	if err != nil {
		return models.Liability{}, fmt.Errorf("corrupt interest rate %q: %w", r.InterestRate, err)
	}
	return models.Liability{
		ID:               r.LiabilityID,
		Name:             r.Name,
		Type:             r.Type,
		TotalAmount:      total,
		RemainingAmount:  remaining,
		InterestRate:     rate,
		MonthlyPayment:   monthly,
		DueDate:          r.DueDate,
		StartDate:        r.StartDate,
		LinkedPurchaseID: r.LinkedPurchaseID,
	}, nil
}

func liabilityToRow(l models.Liability) liabilityRow {
	return liabilityRow{
		LiabilityID:      l.ID,
		Name:             l.Name,
		Type:             l.Type,
		TotalAmount:      l.TotalAmount.Amount.String(),
		RemainingAmount:  l.RemainingAmount.Amount.String(),
		Currency:         l.TotalAmount.Currency,
		InterestRate:     l.InterestRate.String(),
		MonthlyPayment:   l.MonthlyPayment.Amount.String(),
		DueDate:          l.DueDate,
		StartDate:        l.StartDate,
		LinkedPurchaseID: l.LinkedPurchaseID,
	}
}

func (r budgetRow) toModel() (models.Budget, error) {
	amount, err := parseAmount("budget amount", r.Amount, r.Currency)
	if err != nil {
		return models.Budget{}, err
	}
	return models.Budget{
		ID:       r.BudgetID,
		Category: r.Category,
		Amount:   amount,
		Period:   r.Period,
	}, nil
}

func budgetToRow(b models.Budget) budgetRow {
	return budgetRow{
		BudgetID: b.ID,
		Category: b.Category,
		Amount:   b.Amount.Amount.String(),
		Currency: b.Amount.Currency,
		Period:   b.Period,
	}
}

func (r recurringRow) toModel() (models.RecurringTransaction, error) {
	amount, err := parseAmount("recurring amount", r.Amount, r.Currency)
	if err != nil {
		return models.RecurringTransaction{}, err
	}
	return models.RecurringTransaction{
		ID:          r.RecurringID,
		Type:        r.Type,
		Amount:      amount,
		Category:    r.Category,
		Description: r.Description,
		Frequency:   r.Frequency,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		LastRun:     r.LastRun,
	}, nil
}

func recurringToRow(rt models.RecurringTransaction) recurringRow {
	return recurringRow{
		RecurringID: rt.ID,
		Type:        rt.Type,
		Amount:      rt.Amount.Amount.String(),
		Currency:    rt.Amount.Currency,
		Category:    rt.Category,
		Description: rt.Description,
		Frequency:   rt.Frequency,
		StartDate:   rt.StartDate,
		EndDate:     rt.EndDate,
		LastRun:     rt.LastRun,
	}
}
