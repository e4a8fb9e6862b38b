package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrushi1881/fintrack/internal/ledger"
	"github.com/hrushi1881/fintrack/internal/ledgererror"
	"github.com/hrushi1881/fintrack/internal/models"
)

func usd(amount string) models.Money {
	m, err := models.NewMoneyFromString(amount, "USD")
	if err != nil {
		panic(err)
	}
	return m
}

func openTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func TestDatabaseTransactions(t *testing.T) {
	db := openTestDatabase(t)
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tx := models.Transaction{
		ID:          "t1",
		Type:        models.TransactionTypeExpense,
		Amount:      usd("42.50"),
		Category:    "Food & Dining",
		Description: "Lunch",
		Date:        date,
	}

	t.Run("create and get", func(t *testing.T) {
		_, err := db.CreateTransaction(ctx, tx)
		require.NoError(t, err)

		loaded, err := db.GetTransaction(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, tx.ID, loaded.ID)
		assert.True(t, loaded.Amount.Equal(tx.Amount))
		assert.Equal(t, tx.Category, loaded.Category)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := db.GetTransaction(ctx, "nope")
		var notFound *ledgererror.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("update", func(t *testing.T) {
		amount := usd("10")
		category := "Groceries"
		require.NoError(t, db.UpdateTransaction(ctx, "t1", ledger.TransactionPatch{
			Amount:   &amount,
			Category: &category,
		}))

		loaded, err := db.GetTransaction(ctx, "t1")
		require.NoError(t, err)
		assert.True(t, loaded.Amount.Equal(usd("10")))
		assert.Equal(t, "Groceries", loaded.Category)
		// Untouched fields survive.
		assert.Equal(t, "Lunch", loaded.Description)
	})

	t.Run("update missing", func(t *testing.T) {
		category := "x"
		err := db.UpdateTransaction(ctx, "nope", ledger.TransactionPatch{Category: &category})
		var notFound *ledgererror.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		older := tx
		older.ID = "t0"
		older.Date = date.AddDate(0, 0, -5)
		_, err := db.CreateTransaction(ctx, older)
		require.NoError(t, err)

		transactions, err := db.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, "t1", transactions[0].ID)
		assert.Equal(t, "t0", transactions[1].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, db.DeleteTransaction(ctx, "t1"))
		_, err := db.GetTransaction(ctx, "t1")
		var notFound *ledgererror.NotFoundError
		assert.ErrorAs(t, err, &notFound)

		err = db.DeleteTransaction(ctx, "t1")
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestDatabaseGoals(t *testing.T) {
	db := openTestDatabase(t)
	ctx := context.Background()

	goal := models.Goal{
		ID:            "g1",
		Title:         "Vacation",
		Category:      "Travel",
		TargetAmount:  usd("500"),
		CurrentAmount: usd("100"),
	}
	fund := models.Goal{
		ID:            "ef",
		Title:         "Emergency fund",
		Category:      models.CategoryEmergency,
		TargetAmount:  usd("5000"),
		CurrentAmount: usd("1000"),
	}

	_, err := db.CreateGoal(ctx, goal)
	require.NoError(t, err)
	_, err = db.CreateGoal(ctx, fund)
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		loaded, err := db.GetGoal(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, "Vacation", loaded.Title)
		assert.True(t, loaded.CurrentAmount.Equal(usd("100")))
	})

	t.Run("find by category resolves the emergency fund", func(t *testing.T) {
		loaded, err := db.FindGoalByCategory(ctx, models.CategoryEmergency)
		require.NoError(t, err)
		assert.Equal(t, "ef", loaded.ID)
		assert.True(t, loaded.IsEmergencyFund())
	})

	t.Run("find by unknown category", func(t *testing.T) {
		_, err := db.FindGoalByCategory(ctx, "Nonexistent")
		var notFound *ledgererror.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("update current amount", func(t *testing.T) {
		after := usd("250")
		require.NoError(t, db.UpdateGoal(ctx, "g1", ledger.GoalPatch{CurrentAmount: &after}))

		loaded, err := db.GetGoal(ctx, "g1")
		require.NoError(t, err)
		assert.True(t, loaded.CurrentAmount.Equal(usd("250")))
		assert.True(t, loaded.TargetAmount.Equal(usd("500")))
	})

	t.Run("list", func(t *testing.T) {
		goals, err := db.ListGoals(ctx)
		require.NoError(t, err)
		assert.Len(t, goals, 2)
	})
}

func TestDatabaseLiabilities(t *testing.T) {
	db := openTestDatabase(t)
	ctx := context.Background()

	liability := models.Liability{
		ID:              "l1",
		Name:            "Car loan",
		Type:            models.LiabilityTypeLoan,
		TotalAmount:     usd("5000"),
		RemainingAmount: usd("900"),
		MonthlyPayment:  usd("350"),
	}

	_, err := db.CreateLiability(ctx, liability)
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		loaded, err := db.GetLiability(ctx, "l1")
		require.NoError(t, err)
		assert.Equal(t, "Car loan", loaded.Name)
		assert.True(t, loaded.RemainingAmount.Equal(usd("900")))
		assert.True(t, loaded.MonthlyPayment.Equal(usd("350")))
	})

	t.Run("update remaining", func(t *testing.T) {
		after := usd("500")
		require.NoError(t, db.UpdateLiability(ctx, "l1", ledger.LiabilityPatch{RemainingAmount: &after}))

		loaded, err := db.GetLiability(ctx, "l1")
		require.NoError(t, err)
		assert.True(t, loaded.RemainingAmount.Equal(usd("500")))
	})

	t.Run("update linked purchase", func(t *testing.T) {
		linked := "t9"
		require.NoError(t, db.UpdateLiability(ctx, "l1", ledger.LiabilityPatch{LinkedPurchaseID: &linked}))

		loaded, err := db.GetLiability(ctx, "l1")
		require.NoError(t, err)
		assert.Equal(t, "t9", loaded.LinkedPurchaseID)
	})

	t.Run("list", func(t *testing.T) {
		liabilities, err := db.ListLiabilities(ctx)
		require.NoError(t, err)
		assert.Len(t, liabilities, 1)
	})
}

func TestDatabaseBudgetsAndRecurring(t *testing.T) {
	db := openTestDatabase(t)
	ctx := context.Background()

	t.Run("budgets round trip", func(t *testing.T) {
		_, err := db.CreateBudget(ctx, models.Budget{
			ID:       "b1",
			Category: "Food & Dining",
			Amount:   usd("300"),
			Period:   models.PeriodMonthly,
		})
		require.NoError(t, err)

		budgets, err := db.ListBudgets(ctx)
		require.NoError(t, err)
		require.Len(t, budgets, 1)
		assert.True(t, budgets[0].Amount.Equal(usd("300")))
		assert.Equal(t, models.PeriodMonthly, budgets[0].Period)
	})

	t.Run("recurring round trip and run marking", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		_, err := db.CreateRecurring(ctx, models.RecurringTransaction{
			ID:        "rt1",
			Type:      models.TransactionTypeExpense,
			Amount:    usd("9.99"),
			Category:  "Entertainment",
			Frequency: models.FrequencyMonthly,
			StartDate: start,
		})
		require.NoError(t, err)

		lastRun := start.AddDate(0, 1, 0)
		require.NoError(t, db.MarkRecurringRun(ctx, "rt1", lastRun))

		templates, err := db.ListRecurring(ctx)
		require.NoError(t, err)
		require.Len(t, templates, 1)
		assert.True(t, templates[0].LastRun.Equal(lastRun))
	})

	t.Run("marking an unknown template", func(t *testing.T) {
		err := db.MarkRecurringRun(ctx, "nope", time.Now())
		var notFound *ledgererror.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

// TestEngineAgainstDatabase reconciles a representative action sequence
// through the SQLite-backed store.
func TestEngineAgainstDatabase(t *testing.T) {
	db := openTestDatabase(t)
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := db.CreateGoal(ctx, models.Goal{
		ID:            "g1",
		Title:         "Vacation",
		Category:      "Travel",
		TargetAmount:  usd("500"),
		CurrentAmount: usd("400"),
	})
	require.NoError(t, err)

	engine := ledger.NewEngine(db, nil, nil)

	result, err := engine.Reconcile(ctx, ledger.GoalTransfer{
		GoalID:            "g1",
		Amount:            usd("200"),
		Direction:         ledger.DirectionAdd,
		Source:            ledger.SourceManual,
		DeductFromBalance: true,
		Date:              date,
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.TransactionCount())

	goal, err := db.GetGoal(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, goal.CurrentAmount.Equal(usd("500")))

	transactions, err := db.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.True(t, transactions[0].Amount.Equal(usd("200")))
	assert.Equal(t, models.CategorySavings, transactions[0].Category)
}
