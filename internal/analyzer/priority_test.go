package analyzer

import (
	"testing"

	"github.com/jonesrussell/grievance-analyzer/internal/domain"
)

func TestPriorityResolver_Resolve(t *testing.T) {
	resolver := NewPriorityResolver()

	tests := []struct {
		name      string
		text      string
		sentiment domain.Sentiment
		category  domain.Category
		want      domain.Priority
	}{
		{
			name:      "urgency keyword overrides positive sentiment",
			text:      "fire near the new playground, otherwise lovely",
			sentiment: domain.SentimentPositive,
			category:  domain.CategoryMunicipal,
			want:      domain.PriorityCritical,
		},
		{
			name:      "urgency keyword matches inside larger word",
			text:      "streetlight outage causing accidents",
			sentiment: domain.SentimentNeutral,
			category:  domain.CategoryMunicipal,
			want:      domain.PriorityCritical,
		},
		{
			name:      "urgency keyword is case insensitive",
			text:      "URGENT water leak",
			sentiment: domain.SentimentNeutral,
			category:  domain.CategoryUtilities,
			want:      domain.PriorityCritical,
		},
		{
			name:      "healthcare negative is high",
			text:      "long waits at the clinic",
			sentiment: domain.SentimentNegative,
			category:  domain.CategoryHealthcare,
			want:      domain.PriorityHigh,
		},
		{
			name:      "utilities negative is high",
			text:      "power keeps going out",
			sentiment: domain.SentimentNegative,
			category:  domain.CategoryUtilities,
			want:      domain.PriorityHigh,
		},
		{
			name:      "any negative is high",
			text:      "buses always late",
			sentiment: domain.SentimentNegative,
			category:  domain.CategoryTransport,
			want:      domain.PriorityHigh,
		},
		{
			name:      "neutral is medium",
			text:      "library hours could be longer",
			sentiment: domain.SentimentNeutral,
			category:  domain.CategoryEducation,
			want:      domain.PriorityMedium,
		},
		{
			name:      "positive is low",
			text:      "great new park",
			sentiment: domain.SentimentPositive,
			category:  domain.CategoryMunicipal,
			want:      domain.PriorityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.text, tt.sentiment, tt.category)
			if got != tt.want {
				t.Errorf("Resolve(%q, %s, %s) = %s, want %s", tt.text, tt.sentiment, tt.category, got, tt.want)
			}
		})
	}
}
