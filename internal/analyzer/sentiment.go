package analyzer

import (
	"strings"

	"github.com/jonesrussell/grievance-analyzer/internal/domain"
)

// negativeDominanceThreshold is the minimum distinct negative hits before a
// negative-leaning text is labeled Negative instead of Neutral. Complaint
// text is negative by nature; a couple of hits is just baseline noise.
const negativeDominanceThreshold = 2

// SentimentAnalyzer detects polarity by counting distinct keyword hits from
// fixed negative and positive lists. Same substring semantics as the keyword
// scorer: case-insensitive, each keyword counted once.
type SentimentAnalyzer struct {
	negative []string
	positive []string
}

// NewSentimentAnalyzer creates a sentiment analyzer with the default
// polarity keyword lists.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{
		negative: negativeKeywords,
		positive: positiveKeywords,
	}
}

// Analyze returns the sentiment of the raw text. Negative wins only when
// negative hits outnumber positive hits AND exceed the dominance threshold;
// otherwise Positive wins on a strict majority, and everything else
// (including ties and empty input) is Neutral.
func (a *SentimentAnalyzer) Analyze(text string) domain.Sentiment {
	if text == "" {
		return domain.SentimentNeutral
	}

	lower := strings.ToLower(text)
	negativeCount := countHits(lower, a.negative)
	positiveCount := countHits(lower, a.positive)

	switch {
	case negativeCount > positiveCount && negativeCount > negativeDominanceThreshold:
		return domain.SentimentNegative
	case positiveCount > negativeCount:
		return domain.SentimentPositive
	default:
		return domain.SentimentNeutral
	}
}

// countHits counts how many keywords occur in the text, each at most once.
func countHits(lower string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			count++
		}
	}
	return count
}
