package analyzer

import (
	"testing"

	"github.com/jonesrussell/grievance-analyzer/internal/domain"
)

func TestSentimentAnalyzer_Analyze(t *testing.T) {
	analyzer := NewSentimentAnalyzer()

	tests := []struct {
		name string
		text string
		want domain.Sentiment
	}{
		{
			name: "empty text is neutral",
			text: "",
			want: domain.SentimentNeutral,
		},
		{
			name: "no polarity keywords is neutral",
			text: "the office opens at nine",
			want: domain.SentimentNeutral,
		},
		{
			name: "three negative hits is negative",
			text: "terrible service, awful response, everything broken",
			want: domain.SentimentNegative,
		},
		{
			name: "two negative hits stays neutral",
			text: "terrible and awful",
			want: domain.SentimentNeutral,
		},
		{
			name: "positive majority is positive",
			text: "great work, thank you",
			want: domain.SentimentPositive,
		},
		{
			name: "single positive hit is positive",
			text: "good service",
			want: domain.SentimentPositive,
		},
		{
			name: "tie is neutral",
			text: "good but broken",
			want: domain.SentimentNeutral,
		},
		{
			name: "three negatives outweighed by positives is positive",
			text: "bad terrible awful but good great excellent satisfied",
			want: domain.SentimentPositive,
		},
		{
			name: "case insensitive",
			text: "TERRIBLE AWFUL BROKEN",
			want: domain.SentimentNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := analyzer.Analyze(tt.text); got != tt.want {
				t.Errorf("Analyze(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestSentimentAnalyzer_RepeatedKeywordCountsOnce(t *testing.T) {
	analyzer := NewSentimentAnalyzer()

	// "terrible" three times is still one distinct hit, below the threshold.
	got := analyzer.Analyze("terrible terrible terrible")

	if got != domain.SentimentNeutral {
		t.Errorf("expected Neutral for repeated single keyword, got %s", got)
	}
}
