package ml

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern extracts word tokens of two or more characters.
var tokenPattern = regexp.MustCompile(`[a-z0-9]{2,}`)

// Vectorizer is a TF-IDF bag-of-terms vectorizer over unigrams and bigrams,
// capped at MaxFeatures vocabulary terms. Fields are exported for artifact
// serialization; a fitted vectorizer is read-only.
type Vectorizer struct {
	Vocabulary  map[string]int `json:"vocabulary"` // term -> feature index
	IDF         []float64      `json:"idf"`        // by feature index
	MaxFeatures int            `json:"max_features"`
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{MaxFeatures: maxFeatures}
}

// Fit builds the vocabulary and inverse document frequencies from the corpus.
// When the corpus yields more than MaxFeatures distinct terms, the most
// frequent terms win; frequency ties break alphabetically so fitting is
// deterministic.
func (v *Vectorizer) Fit(docs []string) {
	termCount := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		ts := terms(doc)
		seen := make(map[string]struct{}, len(ts))
		for _, term := range ts {
			termCount[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	selected := make([]string, 0, len(termCount))
	for term := range termCount {
		selected = append(selected, term)
	}
	sort.Slice(selected, func(i, j int) bool {
		if termCount[selected[i]] != termCount[selected[j]] {
			return termCount[selected[i]] > termCount[selected[j]]
		}
		return selected[i] < selected[j]
	})
	if v.MaxFeatures > 0 && len(selected) > v.MaxFeatures {
		selected = selected[:v.MaxFeatures]
	}

	// Feature indices are assigned in sorted term order.
	sort.Strings(selected)
	v.Vocabulary = make(map[string]int, len(selected))
	v.IDF = make([]float64, len(selected))
	n := float64(len(docs))
	for i, term := range selected {
		v.Vocabulary[term] = i
		// Smoothed IDF: pretend one extra document contains every term.
		v.IDF[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
}

// Transform maps text to an L2-normalized TF-IDF feature vector. Unknown
// terms are ignored; text with no known terms maps to the zero vector.
func (v *Vectorizer) Transform(text string) []float64 {
	x := make([]float64, len(v.IDF))
	for _, term := range terms(text) {
		if i, ok := v.Vocabulary[term]; ok {
			x[i] += v.IDF[i]
		}
	}

	var norm float64
	for _, val := range x {
		norm += val * val
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range x {
			x[i] /= norm
		}
	}

	return x
}

// Features returns the fitted vocabulary size.
func (v *Vectorizer) Features() int {
	return len(v.IDF)
}

// terms produces the unigrams and bigrams of the lowercased text.
func terms(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return nil
	}

	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
