package insights_test

import (
	"testing"

	"github.com/hrushi1881/fintrack/cmd/insights"

	"github.com/stretchr/testify/assert"
)

func TestInsightsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "insights", insights.Cmd.Use)
	assert.Contains(t, insights.Cmd.Short, "health report")
	assert.NotNil(t, insights.Cmd.RunE)
}
