package categorizer

import (
	"context"
	"strings"

	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/models"
)

// KeywordRule maps description keywords to a transaction type and category.
// Rules are evaluated in order and the first match wins.
type KeywordRule struct {
	Type       string   `yaml:"type"`
	Category   string   `yaml:"category"`
	Keywords   []string `yaml:"keywords"`
	Confidence float64  `yaml:"confidence"`
}

// KeywordStrategy implements categorization by ordered keyword matching
// against the transaction description. It always answers: when no rule
// matches it falls through to (expense, "Other").
type KeywordStrategy struct {
	rules  []KeywordRule
	logger logging.Logger
}

// NewKeywordStrategy creates a keyword strategy. A nil or empty rule set
// uses the compiled-in defaults.
func NewKeywordStrategy(rules []KeywordRule, logger logging.Logger) *KeywordStrategy {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordStrategy{
		rules:  rules,
		logger: logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Suggest matches the description against the ordered rules. It never
// returns an error and always produces a suggestion with Fallback set.
func (s *KeywordStrategy) Suggest(_ context.Context, description string) (Suggestion, bool, error) {
	upper := strings.ToUpper(description)

	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if !strings.Contains(upper, strings.ToUpper(keyword)) {
				continue
			}
			s.logger.WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: "keyword", Value: keyword},
				logging.Field{Key: logging.FieldCategory, Value: rule.Category},
			).Debug("Description categorized by keyword match")

			return Suggestion{
				Type:       rule.Type,
				Category:   rule.Category,
				Confidence: rule.Confidence,
				Fallback:   true,
			}, true, nil
		}
	}

	return Suggestion{
		Type:       models.TransactionTypeExpense,
		Category:   models.CategoryOther,
		Confidence: 0.1,
		Fallback:   true,
	}, true, nil
}

// DefaultRules returns the compiled-in keyword rules, ordered from most to
// least specific.
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{
			Type:       models.TransactionTypeIncome,
			Category:   models.CategorySalary,
			Keywords:   []string{"salary", "paycheck", "payroll", "wages", "bonus"},
			Confidence: 0.9,
		},
		{
			Type:       models.TransactionTypeIncome,
			Category:   models.CategoryOther,
			Keywords:   []string{"refund", "reimbursement", "cashback", "deposit from"},
			Confidence: 0.7,
		},
		{
			Type:       models.TransactionTypeExpense,
			Category:   models.CategoryTransportation,
			Keywords:   []string{"uber", "lyft", "taxi", "cab", "bus ticket", "train", "metro", "fuel", "gas station", "parking"},
			Confidence: 0.85,
		},
		{
			Type:       models.TransactionTypeExpense,
			Category:   models.CategoryGroceries,
			Keywords:   []string{"grocery", "groceries", "supermarket", "market", "walmart", "costco", "aldi"},
			Confidence: 0.85,
		},
		{
			Type:       models.TransactionTypeExpense,
			Category:   models.CategoryFoodDining,
			Keywords:   []string{"restaurant", "cafe", "coffee", "pizza", "burger", "sushi", "takeout", "doordash", "lunch", "dinner"},
			Confidence: 0.8,
		},
		{
			Type:       models.TransactionTypeExpense,
			Category:   models.CategoryHousing,
			Keywords:   []string{"rent", "mortgage", "landlord", "hoa"},
			Confidence: 0.9,
		},
		{
			Type:       models.TransactionTypeExpense,
			Category:   models.CategoryUtilities,
			Keywords:   []string{"electric", "electricity", "water bill", "internet", "wifi", "phone bill", "utility"},
			Confidence: 0.85,
		},
		{
			Type:       models.TransactionTypeExpense,
			Category:   models.CategoryHealthcare,
			Keywords:   []string{"pharmacy", "doctor", "dentist", "hospital", "clinic", "prescription"},
			Confidence: 0.8,
		},
		{
			Type:       models.TransactionTypeExpense,
			Category:   models.CategoryEntertainment,
			Keywords:   []string{"netflix", "spotify", "cinema", "movie", "concert", "game", "subscription"},
			Confidence: 0.75,
		},
		{
			Type:       models.TransactionTypeExpense,
			Category:   models.CategoryShopping,
			Keywords:   []string{"amazon", "shopping", "store", "mall", "clothes", "shoes"},
			Confidence: 0.7,
		},
	}
}
