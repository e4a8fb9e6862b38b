package categorizer

import (
	"context"
	"strings"

	"github.com/hrushi1881/fintrack/internal/ledgererror"
	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/models"
)

// AIClient is the interface to an external categorization service.
type AIClient interface {
	// Categorize returns a (type, category) pair and a confidence score for
	// the description.
	Categorize(ctx context.Context, description string) (txType, category string, confidence float64, err error)
}

// AIStrategy implements categorization through an external AI service. Any
// client failure is reported as not-found so the caller falls through to
// the keyword strategy.
type AIStrategy struct {
	client AIClient
	logger logging.Logger
}

// NewAIStrategy creates a new AIStrategy instance.
func NewAIStrategy(client AIClient, logger logging.Logger) *AIStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &AIStrategy{
		client: client,
		logger: logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Suggest asks the AI client for a categorization. A missing client, an
// upstream error, or an unusable answer all yield (not found, nil error);
// advisory failures must never become reconciliation failures.
func (s *AIStrategy) Suggest(ctx context.Context, description string) (Suggestion, bool, error) {
	if s.client == nil {
		return Suggestion{}, false, nil
	}
	if strings.TrimSpace(description) == "" {
		return Suggestion{}, false, nil
	}

	txType, category, confidence, err := s.client.Categorize(ctx, description)
	if err != nil {
		advisoryErr := &ledgererror.AdvisoryError{Service: "categorization", Err: err}
		s.logger.WithError(advisoryErr).WithField(logging.FieldStrategy, s.Name()).
			Warn("AI categorization failed, deferring to fallback")
		return Suggestion{}, false, nil
	}

	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
			logging.Field{Key: "type", Value: txType},
		).Debug("AI returned unusable transaction type")
		return Suggestion{}, false, nil
	}
	if strings.TrimSpace(category) == "" {
		return Suggestion{}, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Description categorized by AI")

	return Suggestion{
		Type:       txType,
		Category:   category,
		Confidence: confidence,
		Fallback:   false,
	}, true, nil
}
