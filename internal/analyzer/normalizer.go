package analyzer

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"github.com/kljensen/snowball/english"
)

// Normalize prepares raw complaint text for the statistical classifier:
// lowercase, strip everything that is not an ASCII letter or whitespace
// (digits and punctuation are dropped, not replaced), tokenize, remove
// English stopwords, and stem each remaining token. Pure function; returns
// the empty string for empty or all-noise input.
//
// Keyword scoring never uses normalized text: multi-word phrases with
// stopwords ("traffic light") must match the raw text literally.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(b.String())
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if english.IsStopWord(token) {
			continue
		}
		stem, err := snowball.Stem(token, "english", true)
		if err != nil || stem == "" {
			stem = token
		}
		out = append(out, stem)
	}

	return strings.Join(out, " ")
}
