package analyzer

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/grievance-analyzer/internal/domain"
)

// KeywordScorer counts distinct keyword phrase hits per category. It builds
// an Aho-Corasick automaton once from the keyword table so every request is a
// single pass over the text regardless of table size.
type KeywordScorer struct {
	table   []KeywordEntry
	matcher *ahocorasick.Matcher
	phrases []string // unique phrases, in matcher order
	// phrases can belong to more than one category ("road" is both Municipal
	// and Transport), so each hit fans out to every owning category.
	phraseCategories map[string][]domain.Category
}

// NewKeywordScorer builds a scorer from the given table. The table is treated
// as immutable after construction; the scorer is safe for concurrent use.
func NewKeywordScorer(table []KeywordEntry) *KeywordScorer {
	s := &KeywordScorer{
		table:            table,
		phraseCategories: make(map[string][]domain.Category),
	}

	for _, entry := range table {
		for _, phrase := range entry.Phrases {
			normalized := strings.ToLower(strings.TrimSpace(phrase))
			if normalized == "" {
				continue
			}
			if _, seen := s.phraseCategories[normalized]; !seen {
				s.phrases = append(s.phrases, normalized)
			}
			s.phraseCategories[normalized] = append(s.phraseCategories[normalized], entry.Category)
		}
	}

	if len(s.phrases) > 0 {
		s.matcher = ahocorasick.NewStringMatcher(s.phrases)
	}

	return s
}

// Score returns the number of distinct keyword phrases matched per category.
// Matching is case-insensitive substring matching over the raw text, so
// "accident" also hits inside "accidents". Repeated occurrences of the same
// phrase count once. Categories with zero hits are omitted; CategoryOther is
// never present.
func (s *KeywordScorer) Score(text string) map[domain.Category]int {
	scores := make(map[domain.Category]int)
	if s.matcher == nil || text == "" {
		return scores
	}

	// MatchThreadSafe keeps traversal state local; plain Match mutates counters
	// on the shared automaton and is unsafe under concurrent requests.
	hits := s.matcher.MatchThreadSafe([]byte(strings.ToLower(text)))
	for _, hit := range hits {
		if hit < 0 || hit >= len(s.phrases) {
			continue
		}
		for _, category := range s.phraseCategories[s.phrases[hit]] {
			scores[category]++
		}
	}

	return scores
}

// Best selects the category with the strictly highest count. Ties resolve to
// the category declared earliest in the table: an explicit linear scan over
// declaration order, never map iteration order. Returns false when scores is
// empty.
func (s *KeywordScorer) Best(scores map[domain.Category]int) (domain.Category, int, bool) {
	var (
		best      domain.Category
		bestCount int
		found     bool
	)

	for _, entry := range s.table {
		count, ok := scores[entry.Category]
		if !ok {
			continue
		}
		if !found || count > bestCount {
			best = entry.Category
			bestCount = count
			found = true
		}
	}

	return best, bestCount, found
}

// PhraseCount returns the number of unique phrases in the automaton.
func (s *KeywordScorer) PhraseCount() int {
	return len(s.phrases)
}
