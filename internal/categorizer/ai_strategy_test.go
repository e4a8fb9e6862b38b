package categorizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/models"
)

// stubAIClient returns canned answers for tests.
type stubAIClient struct {
	txType     string
	category   string
	confidence float64
	err        error
	calls      int
}

func (c *stubAIClient) Categorize(_ context.Context, _ string) (string, string, float64, error) {
	c.calls++
	return c.txType, c.category, c.confidence, c.err
}

func TestAIStrategySuggest(t *testing.T) {
	t.Run("usable answer is returned without fallback flag", func(t *testing.T) {
		client := &stubAIClient{txType: models.TransactionTypeExpense, category: "Transportation", confidence: 0.92}
		strategy := NewAIStrategy(client, logging.NewMockLogger())

		suggestion, found, err := strategy.Suggest(context.Background(), "Uber ride downtown")
		require.NoError(t, err)
		require.True(t, found)

		assert.Equal(t, "Transportation", suggestion.Category)
		assert.InDelta(t, 0.92, suggestion.Confidence, 0.001)
		assert.False(t, suggestion.Fallback)
	})

	t.Run("client error is swallowed", func(t *testing.T) {
		client := &stubAIClient{err: errors.New("quota exceeded")}
		strategy := NewAIStrategy(client, logging.NewMockLogger())

		_, found, err := strategy.Suggest(context.Background(), "Uber ride downtown")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("unusable transaction type is a miss", func(t *testing.T) {
		client := &stubAIClient{txType: "transfer", category: "Transportation"}
		strategy := NewAIStrategy(client, logging.NewMockLogger())

		_, found, err := strategy.Suggest(context.Background(), "Uber ride downtown")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("empty category is a miss", func(t *testing.T) {
		client := &stubAIClient{txType: models.TransactionTypeExpense}
		strategy := NewAIStrategy(client, logging.NewMockLogger())

		_, found, err := strategy.Suggest(context.Background(), "Uber ride downtown")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("nil client never calls out", func(t *testing.T) {
		strategy := NewAIStrategy(nil, logging.NewMockLogger())

		_, found, err := strategy.Suggest(context.Background(), "Uber ride downtown")
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("blank description is not sent upstream", func(t *testing.T) {
		client := &stubAIClient{txType: models.TransactionTypeExpense, category: "Other"}
		strategy := NewAIStrategy(client, logging.NewMockLogger())

		_, found, err := strategy.Suggest(context.Background(), "   ")
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, client.calls)
	})
}
