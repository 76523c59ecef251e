package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizer_FitBuildsVocabulary(t *testing.T) {
	v := NewVectorizer(1000)
	v.Fit([]string{"broken street light", "street repair"})

	require.NotEmpty(t, v.Vocabulary)
	assert.Len(t, v.IDF, len(v.Vocabulary))

	// Unigrams and bigrams both present.
	assert.Contains(t, v.Vocabulary, "street")
	assert.Contains(t, v.Vocabulary, "broken street")
}

func TestVectorizer_FitDeterministic(t *testing.T) {
	docs := []string{
		"water supply cut off",
		"power outage all night",
		"garbage not collected",
		"water bill too high",
	}

	a := NewVectorizer(1000)
	a.Fit(docs)
	b := NewVectorizer(1000)
	b.Fit(docs)

	assert.Equal(t, a.Vocabulary, b.Vocabulary)
	assert.Equal(t, a.IDF, b.IDF)
}

func TestVectorizer_MaxFeaturesTruncates(t *testing.T) {
	v := NewVectorizer(3)
	v.Fit([]string{"one two three four five six"})

	assert.Equal(t, 3, v.Features())
}

func TestVectorizer_MaxFeaturesKeepsMostFrequent(t *testing.T) {
	v := NewVectorizer(1)
	// "water" appears in every document, everything else once.
	v.Fit([]string{"water leak", "water bill", "water outage"})

	assert.Contains(t, v.Vocabulary, "water")
	assert.Equal(t, 1, v.Features())
}

func TestVectorizer_TransformIsUnitNorm(t *testing.T) {
	v := NewVectorizer(1000)
	v.Fit([]string{"broken street light", "street repair", "garbage pile"})

	x := v.Transform("street light broken")

	var norm float64
	for _, val := range x {
		norm += val * val
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestVectorizer_TransformUnknownTextIsZeroVector(t *testing.T) {
	v := NewVectorizer(1000)
	v.Fit([]string{"broken street light"})

	x := v.Transform("completely unrelated words")

	require.Len(t, x, v.Features())
	for i, val := range x {
		assert.Zerof(t, val, "feature %d", i)
	}
}

func TestVectorizer_TransformIgnoresSingleCharTokens(t *testing.T) {
	v := NewVectorizer(1000)
	v.Fit([]string{"a b c street"})

	assert.NotContains(t, v.Vocabulary, "a")
	assert.Contains(t, v.Vocabulary, "street")
}
