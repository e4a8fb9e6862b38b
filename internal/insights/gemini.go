package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hrushi1881/fintrack/internal/logging"
)

// GeminiGenerator writes the summary and forecast narrative with the
// Gemini API. The health score is never taken from the model; Service
// always recomputes it locally.
type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiGenerator creates a Gemini-backed report generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, logger logging.Logger) (*GeminiGenerator, error) {
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
	return &GeminiGenerator{
		client: client,
		model:  client.GenerativeModel(model),
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// Generate asks Gemini for a narrative report over the metrics.
func (g *GeminiGenerator) Generate(ctx context.Context, m Metrics) (Report, error) {
	prompt := fmt.Sprintf(`You are a personal-finance assistant. Given these monthly metrics:
Income: %s
Expenses: %s
Outstanding debt: %s
Monthly debt payments: %s
Average budget utilization: %s

Respond in this format:
Summary: [one sentence about the month]
Forecast: [one sentence about where this is heading]
Recommendation: [actionable advice]
Recommendation: [actionable advice]
Recommendation: [actionable advice]`,
		m.MonthlyIncome, m.MonthlyExpenses, m.TotalDebt, m.MonthlyDebtPayments,
		m.BudgetUtilization.StringFixed(2))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Report{}, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return Report{}, fmt.Errorf("no response from Gemini API")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	report := parseNarrative(text)
	if report.Summary == "" {
		return Report{}, fmt.Errorf("unusable response from Gemini API")
	}

	g.logger.WithField(logging.FieldOperation, "gemini_insights").Debug("Gemini generated insights narrative")
	return report, nil
}

// parseNarrative extracts the Summary/Forecast/Recommendation lines from
// the model's freeform answer.
func parseNarrative(text string) Report {
	var report Report
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Summary:"):
			report.Summary = strings.TrimSpace(strings.TrimPrefix(line, "Summary:"))
		case strings.HasPrefix(line, "Forecast:"):
			report.Forecast = strings.TrimSpace(strings.TrimPrefix(line, "Forecast:"))
		case strings.HasPrefix(line, "Recommendation:"):
			if rec := strings.TrimSpace(strings.TrimPrefix(line, "Recommendation:")); rec != "" {
				report.Recommendations = append(report.Recommendations, rec)
			}
		}
	}
	return report
}
