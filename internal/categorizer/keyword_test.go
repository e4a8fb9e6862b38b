package categorizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/models"
)

func TestKeywordStrategySuggest(t *testing.T) {
	strategy := NewKeywordStrategy(nil, logging.NewMockLogger())

	tests := []struct {
		name         string
		description  string
		wantType     string
		wantCategory string
	}{
		{
			name:         "ride share maps to transportation",
			description:  "Uber ride downtown",
			wantType:     models.TransactionTypeExpense,
			wantCategory: models.CategoryTransportation,
		},
		{
			name:         "salary maps to income",
			description:  "Monthly SALARY from Acme Corp",
			wantType:     models.TransactionTypeIncome,
			wantCategory: models.CategorySalary,
		},
		{
			name:         "grocery store",
			description:  "Weekly groceries at Aldi",
			wantType:     models.TransactionTypeExpense,
			wantCategory: models.CategoryGroceries,
		},
		{
			name:         "rent payment",
			description:  "rent for march",
			wantType:     models.TransactionTypeExpense,
			wantCategory: models.CategoryHousing,
		},
		{
			name:         "no rule matches",
			description:  "mysterious charge 4711",
			wantType:     models.TransactionTypeExpense,
			wantCategory: models.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestion, found, err := strategy.Suggest(context.Background(), tt.description)
			require.NoError(t, err)
			require.True(t, found, "keyword strategy must always answer")

			assert.Equal(t, tt.wantType, suggestion.Type)
			assert.Equal(t, tt.wantCategory, suggestion.Category)
			assert.True(t, suggestion.Fallback)
			assert.Greater(t, suggestion.Confidence, 0.0)
		})
	}
}

func TestKeywordStrategyMatchingIsCaseInsensitive(t *testing.T) {
	strategy := NewKeywordStrategy(nil, logging.NewMockLogger())

	lower, _, err := strategy.Suggest(context.Background(), "uber ride")
	require.NoError(t, err)
	upper, _, err := strategy.Suggest(context.Background(), "UBER RIDE")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestKeywordStrategyFirstMatchWins(t *testing.T) {
	rules := []KeywordRule{
		{Type: models.TransactionTypeExpense, Category: "First", Keywords: []string{"coffee"}, Confidence: 0.9},
		{Type: models.TransactionTypeExpense, Category: "Second", Keywords: []string{"coffee"}, Confidence: 0.5},
	}
	strategy := NewKeywordStrategy(rules, logging.NewMockLogger())

	suggestion, found, err := strategy.Suggest(context.Background(), "coffee to go")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "First", suggestion.Category)
}

func TestKeywordStrategyFallbackConfidenceIsLow(t *testing.T) {
	strategy := NewKeywordStrategy(nil, logging.NewMockLogger())

	suggestion, _, err := strategy.Suggest(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, suggestion.Confidence, 0.001)
}
