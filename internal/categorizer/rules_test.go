package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrushi1881/fintrack/internal/models"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRules(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		rules, err := LoadRules("")
		require.NoError(t, err)
		assert.Equal(t, DefaultRules(), rules)
	})

	t.Run("valid file overrides defaults", func(t *testing.T) {
		path := writeRulesFile(t, `
rules:
  - type: expense
    category: Pets
    keywords: [vet, "dog food"]
    confidence: 0.8
  - type: income
    category: Dividends
    keywords: [dividend]
    confidence: 0.9
`)
		rules, err := LoadRules(path)
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, "Pets", rules[0].Category)
		assert.Equal(t, models.TransactionTypeIncome, rules[1].Type)
	})

	t.Run("file with no rules falls back to defaults", func(t *testing.T) {
		path := writeRulesFile(t, "rules: []\n")
		rules, err := LoadRules(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultRules(), rules)
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		path := writeRulesFile(t, `
rules:
  - type: transfer
    category: Pets
    keywords: [vet]
`)
		_, err := LoadRules(path)
		assert.Error(t, err)
	})

	t.Run("missing keywords are rejected", func(t *testing.T) {
		path := writeRulesFile(t, `
rules:
  - type: expense
    category: Pets
    keywords: []
`)
		_, err := LoadRules(path)
		assert.Error(t, err)
	})

	t.Run("missing file is reported", func(t *testing.T) {
		_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml is reported", func(t *testing.T) {
		path := writeRulesFile(t, "rules: [unclosed")
		_, err := LoadRules(path)
		assert.Error(t, err)
	})
}
