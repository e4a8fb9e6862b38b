// Package categorizer suggests a transaction type and category for a
// free-text description. Suggestions are advisory only: they pre-fill a
// transaction before submission and never block it. Two strategies are
// provided, an AI-backed one and a local keyword matcher; both produce the
// same Suggestion shape so callers cannot tell the source apart.
package categorizer

import "context"

// Suggestion is the advisory categorization result. Fallback is true when
// the suggestion came from the local keyword rules rather than the AI
// service.
type Suggestion struct {
	Type       string  `json:"type"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Fallback   bool    `json:"fallback"`
}

// Strategy defines one method of producing a suggestion for a description.
type Strategy interface {
	// Suggest attempts to categorize the description. The boolean reports
	// whether the strategy produced a usable suggestion.
	Suggest(ctx context.Context, description string) (Suggestion, bool, error)

	// Name returns the strategy name for logging and debugging.
	Name() string
}
