package analyzer

import (
	"strings"

	"github.com/jonesrussell/grievance-analyzer/internal/domain"
)

// PriorityResolver maps urgency keywords, category, and sentiment to a
// priority level.
type PriorityResolver struct {
	urgency []string
}

// NewPriorityResolver creates a priority resolver with the default urgency
// keyword list.
func NewPriorityResolver() *PriorityResolver {
	return &PriorityResolver{urgency: urgencyKeywords}
}

// Resolve evaluates the priority rules in order. Any urgency keyword in the
// text is an absolute override to Critical, independent of sentiment and
// category. The Healthcare/Utilities branch yields the same High as the
// general Negative branch; it is kept so the escalation rule stays visible
// if the general branch ever changes.
func (r *PriorityResolver) Resolve(text string, sentiment domain.Sentiment, category domain.Category) domain.Priority {
	lower := strings.ToLower(text)
	for _, keyword := range r.urgency {
		if strings.Contains(lower, keyword) {
			return domain.PriorityCritical
		}
	}

	if (category == domain.CategoryHealthcare || category == domain.CategoryUtilities) &&
		sentiment == domain.SentimentNegative {
		return domain.PriorityHigh
	}

	switch sentiment {
	case domain.SentimentNegative:
		return domain.PriorityHigh
	case domain.SentimentNeutral:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
