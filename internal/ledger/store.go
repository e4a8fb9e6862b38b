package ledger

import (
	"context"
	"time"

	"github.com/hrushi1881/fintrack/internal/models"
)

// Store is the persistence collaborator the engine writes through. Every
// method is an asynchronous I/O boundary that may fail with a store-level
// error; the engine awaits each call sequentially and never retries or
// rolls back (see the failure semantics on Engine.Reconcile).
type Store interface {
	GetTransaction(ctx context.Context, id string) (models.Transaction, error)
	CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) error
	DeleteTransaction(ctx context.Context, id string) error

	GetGoal(ctx context.Context, id string) (models.Goal, error)
	// FindGoalByCategory locates a goal by its category; the engine uses it
	// to resolve the emergency fund (category "Emergency").
	FindGoalByCategory(ctx context.Context, category string) (models.Goal, error)
	UpdateGoal(ctx context.Context, id string, patch GoalPatch) error

	GetLiability(ctx context.Context, id string) (models.Liability, error)
	CreateLiability(ctx context.Context, l models.Liability) (models.Liability, error)
	UpdateLiability(ctx context.Context, id string, patch LiabilityPatch) error
}

// TransactionPatch is a partial update of a transaction's editable fields.
// Nil fields are left unchanged.
type TransactionPatch struct {
	Type        *string
	Amount      *models.Money
	Category    *string
	Description *string
	Date        *time.Time
}

// GoalPatch is a partial update of a goal. The engine only ever patches the
// derived running balance.
type GoalPatch struct {
	CurrentAmount *models.Money
}

// LiabilityPatch is a partial update of a liability.
type LiabilityPatch struct {
	RemainingAmount  *models.Money
	LinkedPurchaseID *string
}
