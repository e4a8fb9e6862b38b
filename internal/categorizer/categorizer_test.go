package categorizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/models"
)

func TestCategorizerPrefersAI(t *testing.T) {
	client := &stubAIClient{txType: models.TransactionTypeExpense, category: "Transportation", confidence: 0.95}
	c := New(client, nil, logging.NewMockLogger())

	suggestion := c.Suggest(context.Background(), "Uber ride downtown")

	assert.Equal(t, "Transportation", suggestion.Category)
	assert.False(t, suggestion.Fallback)
}

func TestCategorizerFallsBackOnAIFailure(t *testing.T) {
	client := &stubAIClient{err: errors.New("service unavailable")}
	c := New(client, nil, logging.NewMockLogger())

	suggestion := c.Suggest(context.Background(), "Uber ride downtown")

	// The keyword rules answer instead, and the caller can tell only by
	// the Fallback flag.
	assert.Equal(t, models.CategoryTransportation, suggestion.Category)
	assert.True(t, suggestion.Fallback)
}

func TestCategorizerWithoutAIClient(t *testing.T) {
	c := New(nil, nil, logging.NewMockLogger())

	suggestion := c.Suggest(context.Background(), "Monthly salary")

	assert.Equal(t, models.TransactionTypeIncome, suggestion.Type)
	assert.Equal(t, models.CategorySalary, suggestion.Category)
	assert.True(t, suggestion.Fallback)
}

func TestCategorizerNeverFails(t *testing.T) {
	c := New(nil, nil, logging.NewMockLogger())

	suggestion := c.Suggest(context.Background(), "")

	assert.Equal(t, models.TransactionTypeExpense, suggestion.Type)
	assert.Equal(t, models.CategoryOther, suggestion.Category)
}
