package categorizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hrushi1881/fintrack/internal/models"
)

// rulesFile is the YAML shape of a user-provided rule set:
//
//	rules:
//	  - type: expense
//	    category: Transportation
//	    keywords: [uber, lyft]
//	    confidence: 0.85
type rulesFile struct {
	Rules []KeywordRule `yaml:"rules"`
}

// LoadRules reads keyword rules from a YAML file. An empty path returns the
// compiled-in defaults, matching the behavior of an absent config.
func LoadRules(path string) ([]KeywordRule, error) {
	if path == "" {
		return DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}
	if len(file.Rules) == 0 {
		return DefaultRules(), nil
	}

	for i, rule := range file.Rules {
		if rule.Type != models.TransactionTypeIncome && rule.Type != models.TransactionTypeExpense {
			return nil, fmt.Errorf("rule %d: invalid type %q", i, rule.Type)
		}
		if rule.Category == "" {
			return nil, fmt.Errorf("rule %d: category is required", i)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d: at least one keyword is required", i)
		}
	}

	return file.Rules, nil
}
