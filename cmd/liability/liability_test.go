package liability_test

import (
	"testing"

	"github.com/hrushi1881/fintrack/cmd/liability"

	"github.com/stretchr/testify/assert"
)

func TestLiabilityCommand_Metadata(t *testing.T) {
	assert.Equal(t, "liability", liability.Cmd.Use)
	assert.Contains(t, liability.Cmd.Short, "debt payments")
}

func TestLiabilityCommand_SubCommands(t *testing.T) {
	names := make([]string, 0, 2)
	for _, c := range liability.Cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "pay")
}

func TestAddCommand_Flags(t *testing.T) {
	addCmd, _, err := liability.Cmd.Find([]string{"add"})
	assert.NoError(t, err)

	typeFlag := addCmd.Flags().Lookup("type")
	assert.NotNil(t, typeFlag)
	assert.Equal(t, "loan", typeFlag.DefValue)

	incomeFlag := addCmd.Flags().Lookup("as-income")
	assert.NotNil(t, incomeFlag)
	assert.Equal(t, "false", incomeFlag.DefValue)

	linkedFlag := addCmd.Flags().Lookup("linked-purchase")
	assert.NotNil(t, linkedFlag)
	assert.Contains(t, linkedFlag.Usage, "purchase")
}

func TestPayCommand_Flags(t *testing.T) {
	payCmd, _, err := liability.Cmd.Find([]string{"pay"})
	assert.NoError(t, err)

	liabilityFlag := payCmd.Flags().Lookup("liability")
	assert.NotNil(t, liabilityFlag)
	assert.Equal(t, "l", liabilityFlag.Shorthand)

	yesFlag := payCmd.Flags().Lookup("yes")
	assert.NotNil(t, yesFlag)
	assert.Equal(t, "y", yesFlag.Shorthand)
	assert.Equal(t, "false", yesFlag.DefValue)
	assert.Contains(t, yesFlag.Usage, "overpayment")

	noTxFlag := payCmd.Flags().Lookup("no-transaction")
	assert.NotNil(t, noTxFlag)
	assert.Equal(t, "false", noTxFlag.DefValue)
}
