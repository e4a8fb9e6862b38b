// Package categorize handles the advisory categorization command.
package categorize

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrushi1881/fintrack/cmd/root"
)

var description string

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Suggest a type and category for a transaction description",
	Long: `Suggest a (type, category) pair for a free-text description. Uses
the Gemini model when AI is enabled, falling back to local keyword rules;
either way the suggestion is advisory and has the same shape.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "m", "", "Transaction description")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	suggestion := root.NewCategorizer(cmd.Context()).Suggest(cmd.Context(), description)

	source := "ai"
	if suggestion.Fallback {
		source = "keyword rules"
	}
	root.Log.Info(fmt.Sprintf("%s / %s (confidence %.2f, via %s)",
		suggestion.Type, suggestion.Category, suggestion.Confidence, source))
	return nil
}
