package export_test

import (
	"testing"

	"github.com/hrushi1881/fintrack/cmd/export"

	"github.com/stretchr/testify/assert"
)

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", export.Cmd.Use)
	assert.Contains(t, export.Cmd.Short, "CSV")
	assert.NotNil(t, export.Cmd.RunE)
}

func TestExportCommand_Flags(t *testing.T) {
	outputFlag := export.Cmd.Flags().Lookup("output")
	assert.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, "transactions.csv", outputFlag.DefValue)
}
