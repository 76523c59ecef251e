package analyzer

import "github.com/jonesrussell/grievance-analyzer/internal/domain"

// KeywordEntry associates a category with its keyword phrases. Phrases are
// matched case-insensitively as literal substrings of the raw complaint text,
// so multi-word phrases like "traffic light" must occur verbatim.
type KeywordEntry struct {
	Category domain.Category
	Phrases  []string
}

// DefaultKeywordTable returns the fixed category keyword table. Entry order
// is significant: ties in keyword counts resolve to the earliest entry.
// CategoryOther carries no keywords; it is the universal fallback.
func DefaultKeywordTable() []KeywordEntry {
	return []KeywordEntry{
		{
			Category: domain.CategoryMunicipal,
			Phrases: []string{
				"road", "street", "pothole", "garbage", "waste", "drainage",
				"sewage", "streetlight", "park", "municipal", "city", "urban",
				"sidewalk", "traffic light", "public toilet", "public space",
			},
		},
		{
			Category: domain.CategoryHealthcare,
			Phrases: []string{
				"hospital", "clinic", "doctor", "medicine", "health", "medical",
				"treatment", "patient", "ambulance", "pharmacy", "nurse",
				"healthcare", "health care", "heart", "stroke", "cardiac",
				"emergency", "surgery", "disease", "illness", "symptom",
				"diagnosis", "prescription", "medication", "therapy", "vaccine",
				"covid", "coronavirus", "fever", "pain", "injury", "wound",
				"blood", "cancer", "diabetes", "hypertension", "asthma",
				"infection", "virus", "bacteria",
			},
		},
		{
			Category: domain.CategoryEducation,
			Phrases: []string{
				"school", "college", "university", "teacher", "student",
				"education", "exam", "admission", "curriculum", "tuition",
				"scholarship", "textbook", "library", "classroom", "principal",
				"faculty",
			},
		},
		{
			Category: domain.CategoryTransport,
			Phrases: []string{
				"bus", "train", "metro", "traffic", "parking", "vehicle",
				"transport", "road", "highway", "public transport", "taxi",
				"cab", "subway", "tram", "bike", "bicycle", "lane",
			},
		},
		{
			Category: domain.CategoryUtilities,
			Phrases: []string{
				"electricity", "water", "power", "gas", "internet", "phone",
				"utility", "bill", "connection", "electric", "plumbing",
				"heating", "cooling", "ac", "air conditioning", "sewer", "cable",
			},
		},
	}
}

// negativeKeywords are polarity cues counted by the sentiment analyzer.
var negativeKeywords = []string{
	"bad", "terrible", "awful", "horrible", "worst", "disappointed",
	"frustrated", "angry", "urgent", "emergency", "critical", "broken",
	"failed", "not working", "problem", "issue", "complaint",
}

var positiveKeywords = []string{
	"good", "great", "excellent", "satisfied", "happy", "thank", "appreciate",
}

// urgencyKeywords force Critical priority regardless of sentiment or category.
var urgencyKeywords = []string{
	"urgent", "emergency", "critical", "immediate", "asap",
	"dangerous", "safety", "accident", "fire", "flood",
}
