package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var modelDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func mustMoney(amount string) Money {
	m, err := NewMoneyFromString(amount, "USD")
	if err != nil {
		panic(err)
	}
	return m
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		ID:     "t1",
		Type:   TransactionTypeExpense,
		Amount: mustMoney("10"),
		Date:   modelDate,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"unknown type", func(tx *Transaction) { tx.Type = "transfer" }},
		{"zero amount", func(tx *Transaction) { tx.Amount = mustMoney("0") }},
		{"negative amount", func(tx *Transaction) { tx.Amount = mustMoney("-1") }},
		{"missing date", func(tx *Transaction) { tx.Date = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			assert.Error(t, tx.Validate())
		})
	}
}

func TestTransactionSplitSum(t *testing.T) {
	parent := Transaction{ID: "p1", Type: TransactionTypeExpense, Amount: mustMoney("100"), Date: modelDate}
	children := []Transaction{
		{ID: "c1", ParentTransactionID: "p1", Type: TransactionTypeExpense, Amount: mustMoney("60"), Date: modelDate},
		{ID: "c2", ParentTransactionID: "p1", Type: TransactionTypeExpense, Amount: mustMoney("40"), Date: modelDate},
		{ID: "x1", ParentTransactionID: "other", Type: TransactionTypeExpense, Amount: mustMoney("5"), Date: modelDate},
	}

	sum, ok := parent.SplitSum(children)
	assert.True(t, ok)
	assert.True(t, sum.Equal(mustMoney("100")))

	short, ok := parent.SplitSum(children[:1])
	assert.False(t, ok)
	assert.True(t, short.Equal(mustMoney("60")))
}

func TestTransactionSignedAmount(t *testing.T) {
	income := Transaction{Type: TransactionTypeIncome, Amount: mustMoney("50")}
	expense := Transaction{Type: TransactionTypeExpense, Amount: mustMoney("50")}

	assert.True(t, income.SignedAmount().IsPositive())
	assert.True(t, expense.SignedAmount().IsNegative())
}

func TestGoal(t *testing.T) {
	goal := Goal{
		ID:            "g1",
		Title:         "Vacation",
		Category:      "Travel",
		TargetAmount:  mustMoney("500"),
		CurrentAmount: mustMoney("400"),
	}

	t.Run("valid goal", func(t *testing.T) {
		require.NoError(t, goal.Validate())
		assert.True(t, goal.Remaining().Equal(mustMoney("100")))
		assert.False(t, goal.IsComplete())
		assert.False(t, goal.IsEmergencyFund())
	})

	t.Run("emergency fund is identified by category", func(t *testing.T) {
		fund := goal
		fund.Category = CategoryEmergency
		assert.True(t, fund.IsEmergencyFund())
	})

	t.Run("complete at target", func(t *testing.T) {
		done := goal
		done.CurrentAmount = done.TargetAmount
		assert.True(t, done.IsComplete())
		assert.True(t, done.Remaining().IsZero())
	})

	t.Run("invalid goals", func(t *testing.T) {
		missingTitle := goal
		missingTitle.Title = ""
		assert.Error(t, missingTitle.Validate())

		overfull := goal
		overfull.CurrentAmount = mustMoney("600")
		assert.Error(t, overfull.Validate())

		negative := goal
		negative.CurrentAmount = mustMoney("-1")
		assert.Error(t, negative.Validate())
	})
}

func TestLiability(t *testing.T) {
	liability := Liability{
		ID:              "l1",
		Name:            "Car loan",
		Type:            LiabilityTypeLoan,
		TotalAmount:     mustMoney("5000"),
		RemainingAmount: mustMoney("900"),
	}

	t.Run("valid liability", func(t *testing.T) {
		require.NoError(t, liability.Validate())
		assert.False(t, liability.IsPaidOff())
		assert.False(t, liability.IsPurchase())
	})

	t.Run("purchase type", func(t *testing.T) {
		purchase := liability
		purchase.Type = LiabilityTypePurchase
		assert.True(t, purchase.IsPurchase())
	})

	t.Run("paid off at zero remaining", func(t *testing.T) {
		done := liability
		done.RemainingAmount = mustMoney("0")
		assert.True(t, done.IsPaidOff())
	})

	t.Run("invalid liabilities", func(t *testing.T) {
		badType := liability
		badType.Type = "iou"
		assert.Error(t, badType.Validate())

		overRemaining := liability
		overRemaining.RemainingAmount = mustMoney("6000")
		assert.Error(t, overRemaining.Validate())

		noName := liability
		noName.Name = ""
		assert.Error(t, noName.Validate())
	})
}

func TestBudgetValidate(t *testing.T) {
	valid := Budget{ID: "b1", Category: "Food & Dining", Amount: mustMoney("300"), Period: PeriodMonthly}
	assert.NoError(t, valid.Validate())

	badPeriod := valid
	badPeriod.Period = "fortnightly"
	assert.Error(t, badPeriod.Validate())

	noCategory := valid
	noCategory.Category = ""
	assert.Error(t, noCategory.Validate())

	zeroAmount := valid
	zeroAmount.Amount = mustMoney("0")
	assert.Error(t, zeroAmount.Validate())
}

func TestRecurringTransaction(t *testing.T) {
	valid := RecurringTransaction{
		ID:        "rt1",
		Type:      TransactionTypeExpense,
		Amount:    mustMoney("9.99"),
		Category:  "Entertainment",
		Frequency: FrequencyMonthly,
		StartDate: modelDate,
	}
	require.NoError(t, valid.Validate())

	t.Run("expiry", func(t *testing.T) {
		open := valid
		assert.False(t, open.Expired(modelDate.AddDate(10, 0, 0)))

		closed := valid
		closed.EndDate = modelDate.AddDate(0, 1, 0)
		assert.False(t, closed.Expired(closed.EndDate))
		assert.True(t, closed.Expired(closed.EndDate.AddDate(0, 0, 1)))
	})

	t.Run("invalid templates", func(t *testing.T) {
		badFrequency := valid
		badFrequency.Frequency = "hourly"
		assert.Error(t, badFrequency.Validate())

		noStart := valid
		noStart.StartDate = time.Time{}
		assert.Error(t, noStart.Validate())
	})
}
