package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNarrative(t *testing.T) {
	t.Run("well formed answer", func(t *testing.T) {
		report := parseNarrative(`Summary: A solid month with positive cash flow.
Forecast: Savings will grow steadily.
Recommendation: Keep contributing to the emergency fund.
Recommendation: Review subscription spending.`)

		assert.Equal(t, "A solid month with positive cash flow.", report.Summary)
		assert.Equal(t, "Savings will grow steadily.", report.Forecast)
		assert.Len(t, report.Recommendations, 2)
	})

	t.Run("empty recommendation lines are dropped", func(t *testing.T) {
		report := parseNarrative("Summary: ok\nRecommendation:\nRecommendation: do something")
		assert.Len(t, report.Recommendations, 1)
	})

	t.Run("unrelated text is ignored", func(t *testing.T) {
		report := parseNarrative("Here is your report!\nSummary: fine\nThanks for asking.")
		assert.Equal(t, "fine", report.Summary)
		assert.Empty(t, report.Forecast)
	})

	t.Run("empty answer yields empty report", func(t *testing.T) {
		report := parseNarrative("")
		assert.Empty(t, report.Summary)
	})
}
