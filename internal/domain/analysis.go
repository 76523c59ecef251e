// Package domain defines the core types shared across the grievance analyzer.
package domain

// Category is the department a complaint is routed to.
type Category string

// Complaint categories. Declaration order is significant: when keyword
// evidence ties between categories, the one declared earlier wins.
const (
	CategoryMunicipal  Category = "Municipal"
	CategoryHealthcare Category = "Healthcare"
	CategoryEducation  Category = "Education"
	CategoryTransport  Category = "Transport"
	CategoryUtilities  Category = "Utilities"
	CategoryOther      Category = "Other"
)

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryMunicipal,
		CategoryHealthcare,
		CategoryEducation,
		CategoryTransport,
		CategoryUtilities,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryMunicipal, CategoryHealthcare, CategoryEducation,
		CategoryTransport, CategoryUtilities, CategoryOther:
		return true
	}
	return false
}

// Sentiment is the polarity detected in a complaint.
type Sentiment string

// Sentiment labels.
const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// Priority is the urgency tier assigned to a complaint,
// ordered Critical > High > Medium > Low.
type Priority string

// Priority levels.
const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Decision paths recorded on an AnalysisResult. They name which row of the
// category decision table produced the final category.
const (
	MethodKeywordStrong = "keyword_strong"
	MethodMLConfident   = "ml_confident"
	MethodKeywordWeak   = "keyword_weak"
	MethodMLFallback    = "ml_fallback"
	MethodDefault       = "default"
)

// AnalysisResult is the outcome of analyzing one complaint.
// Produced fresh per request; never persisted.
type AnalysisResult struct {
	Category   Category  `json:"category"`
	Confidence float64   `json:"confidence"` // always in [0,1]
	Sentiment  Sentiment `json:"sentiment"`
	Priority   Priority  `json:"priority"`

	// Analysis metadata
	Method           string `json:"method"` // decision path, see Method* constants
	ProcessingTimeMs int64  `json:"processing_time_ms"`
}
