package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGeminiResponse(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantType       string
		wantCategory   string
		wantConfidence float64
	}{
		{
			name:           "well formed answer",
			text:           "Type: expense\nCategory: Transportation\nConfidence: 0.92",
			wantType:       "expense",
			wantCategory:   "Transportation",
			wantConfidence: 0.92,
		},
		{
			name:           "extra whitespace and casing",
			text:           "  Type:  EXPENSE  \n  Category:  Food & Dining  \n  Confidence: 0.7  ",
			wantType:       "expense",
			wantCategory:   "Food & Dining",
			wantConfidence: 0.7,
		},
		{
			name:           "missing confidence defaults to 0.5",
			text:           "Type: income\nCategory: Salary",
			wantType:       "income",
			wantCategory:   "Salary",
			wantConfidence: 0.5,
		},
		{
			name:           "confidence above one is clamped",
			text:           "Type: expense\nCategory: Other\nConfidence: 3.5",
			wantType:       "expense",
			wantCategory:   "Other",
			wantConfidence: 1.0,
		},
		{
			name:           "negative confidence is clamped",
			text:           "Type: expense\nCategory: Other\nConfidence: -1",
			wantType:       "expense",
			wantCategory:   "Other",
			wantConfidence: 0.0,
		},
		{
			name:           "empty answer",
			text:           "",
			wantType:       "",
			wantCategory:   "",
			wantConfidence: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txType, category, confidence := parseGeminiResponse(tt.text)
			assert.Equal(t, tt.wantType, txType)
			assert.Equal(t, tt.wantCategory, category)
			assert.InDelta(t, tt.wantConfidence, confidence, 0.001)
		})
	}
}
