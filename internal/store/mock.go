package store

import (
	"context"

	"github.com/hrushi1881/fintrack/internal/ledger"
	"github.com/hrushi1881/fintrack/internal/ledgererror"
	"github.com/hrushi1881/fintrack/internal/models"
)

// Mock is an in-memory implementation of ledger.Store for testing. Each
// write method has an injectable error so tests can exercise the engine's
// partial-failure semantics.
type Mock struct {
	Transactions map[string]models.Transaction
	Goals        map[string]models.Goal
	Liabilities  map[string]models.Liability

	// CreateOrder records transaction IDs in creation order.
	CreateOrder []string

	// Error injection points.
	CreateTransactionError error
	UpdateTransactionError error
	DeleteTransactionError error
	UpdateGoalError        error
	CreateLiabilityError   error
	UpdateLiabilityError   error
}

// NewMock returns an empty mock store.
func NewMock() *Mock {
	return &Mock{
		Transactions: make(map[string]models.Transaction),
		Goals:        make(map[string]models.Goal),
		Liabilities:  make(map[string]models.Liability),
	}
}

// GetTransaction returns the stored transaction or a NotFoundError.
func (m *Mock) GetTransaction(_ context.Context, id string) (models.Transaction, error) {
	tx, ok := m.Transactions[id]
	if !ok {
		return models.Transaction{}, &ledgererror.NotFoundError{Entity: "transaction", ID: id}
	}
	return tx, nil
}

// CreateTransaction stores the transaction.
func (m *Mock) CreateTransaction(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	if m.CreateTransactionError != nil {
		return models.Transaction{}, m.CreateTransactionError
	}
	m.Transactions[tx.ID] = tx
	m.CreateOrder = append(m.CreateOrder, tx.ID)
	return tx, nil
}

// UpdateTransaction applies the patch to a stored transaction.
func (m *Mock) UpdateTransaction(_ context.Context, id string, patch ledger.TransactionPatch) error {
	if m.UpdateTransactionError != nil {
		return m.UpdateTransactionError
	}
	tx, ok := m.Transactions[id]
	if !ok {
		return &ledgererror.NotFoundError{Entity: "transaction", ID: id}
	}
	if patch.Type != nil {
		tx.Type = *patch.Type
	}
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
	}
	if patch.Category != nil {
		tx.Category = *patch.Category
	}
	if patch.Description != nil {
		tx.Description = *patch.Description
	}
	if patch.Date != nil {
		tx.Date = *patch.Date
	}
	m.Transactions[id] = tx
	return nil
}

// DeleteTransaction removes a stored transaction.
func (m *Mock) DeleteTransaction(_ context.Context, id string) error {
	if m.DeleteTransactionError != nil {
		return m.DeleteTransactionError
	}
	if _, ok := m.Transactions[id]; !ok {
		return &ledgererror.NotFoundError{Entity: "transaction", ID: id}
	}
	delete(m.Transactions, id)
	return nil
}

// GetGoal returns the stored goal or a NotFoundError.
func (m *Mock) GetGoal(_ context.Context, id string) (models.Goal, error) {
	goal, ok := m.Goals[id]
	if !ok {
		return models.Goal{}, &ledgererror.NotFoundError{Entity: "goal", ID: id}
	}
	return goal, nil
}

// FindGoalByCategory returns the first goal with the given category.
func (m *Mock) FindGoalByCategory(_ context.Context, category string) (models.Goal, error) {
	for _, goal := range m.Goals {
		if goal.Category == category {
			return goal, nil
		}
	}
	return models.Goal{}, &ledgererror.NotFoundError{Entity: "goal", ID: "category=" + category}
}

// UpdateGoal applies the patch to a stored goal.
func (m *Mock) UpdateGoal(_ context.Context, id string, patch ledger.GoalPatch) error {
	if m.UpdateGoalError != nil {
		return m.UpdateGoalError
	}
	goal, ok := m.Goals[id]
	if !ok {
		return &ledgererror.NotFoundError{Entity: "goal", ID: id}
	}
	if patch.CurrentAmount != nil {
		goal.CurrentAmount = *patch.CurrentAmount
	}
	m.Goals[id] = goal
	return nil
}

// GetLiability returns the stored liability or a NotFoundError.
func (m *Mock) GetLiability(_ context.Context, id string) (models.Liability, error) {
	l, ok := m.Liabilities[id]
	if !ok {
		return models.Liability{}, &ledgererror.NotFoundError{Entity: "liability", ID: id}
	}
	return l, nil
}

// CreateLiability stores the liability.
func (m *Mock) CreateLiability(_ context.Context, l models.Liability) (models.Liability, error) {
	if m.CreateLiabilityError != nil {
		return models.Liability{}, m.CreateLiabilityError
	}
	m.Liabilities[l.ID] = l
	return l, nil
}

// UpdateLiability applies the patch to a stored liability.
func (m *Mock) UpdateLiability(_ context.Context, id string, patch ledger.LiabilityPatch) error {
	if m.UpdateLiabilityError != nil {
		return m.UpdateLiabilityError
	}
	l, ok := m.Liabilities[id]
	if !ok {
		return &ledgererror.NotFoundError{Entity: "liability", ID: id}
	}
	if patch.RemainingAmount != nil {
		l.RemainingAmount = *patch.RemainingAmount
	}
	if patch.LinkedPurchaseID != nil {
		l.LinkedPurchaseID = *patch.LinkedPurchaseID
	}
	m.Liabilities[id] = l
	return nil
}
