package recurring_test

import (
	"testing"

	"github.com/hrushi1881/fintrack/cmd/recurring"

	"github.com/stretchr/testify/assert"
)

func TestRecurringCommand_Metadata(t *testing.T) {
	assert.Equal(t, "recurring", recurring.Cmd.Use)
	assert.Contains(t, recurring.Cmd.Short, "recurring")
}

func TestRecurringCommand_SubCommands(t *testing.T) {
	names := make([]string, 0, 2)
	for _, c := range recurring.Cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "run")
}

func TestAddCommand_Flags(t *testing.T) {
	addCmd, _, err := recurring.Cmd.Find([]string{"add"})
	assert.NoError(t, err)

	typeFlag := addCmd.Flags().Lookup("type")
	assert.NotNil(t, typeFlag)
	assert.Equal(t, "expense", typeFlag.DefValue)

	frequencyFlag := addCmd.Flags().Lookup("frequency")
	assert.NotNil(t, frequencyFlag)
	assert.Equal(t, "monthly", frequencyFlag.DefValue)

	startFlag := addCmd.Flags().Lookup("start")
	assert.NotNil(t, startFlag)
	assert.Contains(t, startFlag.Usage, "defaults to today")

	assert.NotNil(t, addCmd.Flags().Lookup("end"))
}

func TestRunCommand_NoFlags(t *testing.T) {
	runCmd, _, err := recurring.Cmd.Find([]string{"run"})
	assert.NoError(t, err)
	assert.False(t, runCmd.Flags().HasFlags())
}
