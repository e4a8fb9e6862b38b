package categorizer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/models"
)

// GeminiClient implements the AIClient interface against the Google Gemini
// API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiClient creates a Gemini-backed categorization client.
func NewGeminiClient(ctx context.Context, apiKey, model string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(model),
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// Categorize asks Gemini for a (type, category, confidence) triple for the
// description.
func (c *GeminiClient) Categorize(ctx context.Context, description string) (string, string, float64, error) {
	prompt := fmt.Sprintf(`Categorize the following personal-finance transaction description:
%s

Decide whether it is income or expense and assign exactly one of these categories:
%s

Respond in this format:
Type: [income or expense]
Category: [Selected Category Name]
Confidence: [0.0 to 1.0]`,
		description,
		strings.Join(knownCategories(), ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", "", 0, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", "", 0, fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	txType, category, confidence := parseGeminiResponse(responseText)

	c.logger.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "gemini_categorization"},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Gemini classified description")

	return txType, category, confidence, nil
}

// parseGeminiResponse extracts the Type/Category/Confidence lines from the
// model's freeform answer.
func parseGeminiResponse(text string) (txType, category string, confidence float64) {
	confidence = 0.5
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Type:"):
			txType = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "Type:")))
		case strings.HasPrefix(line, "Category:"):
			category = strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
		case strings.HasPrefix(line, "Confidence:"):
			if v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(line, "Confidence:")), 64); err == nil {
				if v < 0 {
					v = 0
				}
				if v > 1 {
					v = 1
				}
				confidence = v
			}
		}
	}
	return txType, category, confidence
}

func knownCategories() []string {
	return []string{
		models.CategorySalary,
		models.CategoryGroceries,
		models.CategoryFoodDining,
		models.CategoryTransportation,
		models.CategoryHousing,
		models.CategoryUtilities,
		models.CategoryHealthcare,
		models.CategoryEntertainment,
		models.CategoryShopping,
		models.CategoryOther,
	}
}
