package budget_test

import (
	"testing"

	"github.com/hrushi1881/fintrack/cmd/budget"

	"github.com/stretchr/testify/assert"
)

func TestBudgetCommand_Metadata(t *testing.T) {
	assert.Equal(t, "budget", budget.Cmd.Use)
	assert.Contains(t, budget.Cmd.Short, "budgets")
}

func TestBudgetCommand_SubCommands(t *testing.T) {
	names := make([]string, 0, 2)
	for _, c := range budget.Cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "set")
	assert.Contains(t, names, "status")
}

func TestSetCommand_Flags(t *testing.T) {
	setCmd, _, err := budget.Cmd.Find([]string{"set"})
	assert.NoError(t, err)

	categoryFlag := setCmd.Flags().Lookup("category")
	assert.NotNil(t, categoryFlag)
	assert.Equal(t, "c", categoryFlag.Shorthand)

	amountFlag := setCmd.Flags().Lookup("amount")
	assert.NotNil(t, amountFlag)
	assert.Equal(t, "a", amountFlag.Shorthand)

	periodFlag := setCmd.Flags().Lookup("period")
	assert.NotNil(t, periodFlag)
	assert.Equal(t, "monthly", periodFlag.DefValue)
}

func TestStatusCommand_NoFlags(t *testing.T) {
	statusCmd, _, err := budget.Cmd.Find([]string{"status"})
	assert.NoError(t, err)
	assert.False(t, statusCmd.Flags().HasFlags())
}
