package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/models"
)

func usd(amount string) models.Money {
	m, err := models.NewMoneyFromString(amount, "USD")
	if err != nil {
		panic(err)
	}
	return m
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "t1",
			Type:        models.TransactionTypeExpense,
			Amount:      usd("42.50"),
			Category:    "Food & Dining",
			Description: "Lunch",
			Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                     "t2",
			Type:                   models.TransactionTypeIncome,
			Amount:                 usd("5000"),
			Category:               "Salary",
			Description:            "March salary",
			Date:                   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			RecurringTransactionID: "rt1",
		},
	}
}

func TestWriteTransactions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	writer := NewWriter(',', "2006-01-02", logging.NewMockLogger())

	require.NoError(t, writer.WriteTransactions(sampleTransactions(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "id")
	assert.Contains(t, lines[0], "amount")
	assert.Contains(t, lines[1], "42.50")
	assert.Contains(t, lines[1], "2024-03-15")
	assert.Contains(t, lines[2], "rt1")
}

func TestWriteTransactionsCustomDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	writer := NewWriter(';', "02.01.2006", logging.NewMockLogger())

	require.NoError(t, writer.WriteTransactions(sampleTransactions(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ";")
	assert.Contains(t, string(data), "15.03.2024")
}

func TestWriteTransactionsEmptySlice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	writer := NewWriter(0, "", logging.NewMockLogger())

	require.NoError(t, writer.WriteTransactions([]models.Transaction{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Header only.
	assert.Contains(t, string(data), "id")
}

func TestWriteTransactionsNilSlice(t *testing.T) {
	writer := NewWriter(0, "", logging.NewMockLogger())
	err := writer.WriteTransactions(nil, filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}
