package categorizer

import (
	"context"

	"github.com/hrushi1881/fintrack/internal/logging"
)

// Categorizer runs the configured strategies in order (AI first when
// available, then the local keyword fallback) and returns the first usable
// suggestion. The keyword strategy always answers, so Suggest never fails.
type Categorizer struct {
	strategies []Strategy
	logger     logging.Logger
}

// New creates a categorizer. A nil aiClient disables the AI strategy and
// leaves only the keyword fallback.
func New(aiClient AIClient, rules []KeywordRule, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}

	var strategies []Strategy
	if aiClient != nil {
		strategies = append(strategies, NewAIStrategy(aiClient, logger))
	}
	strategies = append(strategies, NewKeywordStrategy(rules, logger))

	return &Categorizer{
		strategies: strategies,
		logger:     logger,
	}
}

// Suggest produces an advisory (type, category) suggestion for the
// description. Upstream failures are invisible to the caller: the local
// rules answer instead, with Fallback set on the result.
func (c *Categorizer) Suggest(ctx context.Context, description string) Suggestion {
	for _, strategy := range c.strategies {
		suggestion, found, err := strategy.Suggest(ctx, description)
		if err != nil {
			// Strategies are expected to swallow their own errors; treat a
			// leaked one as a miss.
			c.logger.WithError(err).WithField(logging.FieldStrategy, strategy.Name()).
				Warn("Categorization strategy failed")
			continue
		}
		if found {
			return suggestion
		}
	}

	// Unreachable as long as the keyword strategy is last: it always answers.
	keyword := NewKeywordStrategy(nil, c.logger)
	suggestion, _, _ := keyword.Suggest(ctx, description)
	return suggestion
}
