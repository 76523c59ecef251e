package ml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/grievance-analyzer/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...any) {}
func (nopLogger) Info(msg string, keysAndValues ...any)  {}
func (nopLogger) Warn(msg string, keysAndValues ...any)  {}
func (nopLogger) Error(msg string, keysAndValues ...any) {}

func toyCorpus() []Example {
	return []Example{
		{Text: "pothole road street", Label: domain.CategoryMunicipal},
		{Text: "garbage street waste", Label: domain.CategoryMunicipal},
		{Text: "hospital doctor nurse", Label: domain.CategoryHealthcare},
		{Text: "medicine hospital patient", Label: domain.CategoryHealthcare},
		{Text: "bus train metro", Label: domain.CategoryTransport},
		{Text: "traffic bus highway", Label: domain.CategoryTransport},
		{Text: "general issue", Label: domain.CategoryOther},
	}
}

func TestClassifier_InitializeTrainsWhenNoArtifacts(t *testing.T) {
	dir := t.TempDir()
	c := NewClassifier(dir, 1000, nopLogger{})

	trained := false
	c.OnTrained(func() { trained = true })

	require.NoError(t, c.Initialize(toyCorpus(), false))

	assert.True(t, c.Ready())
	assert.True(t, trained)
	assert.Equal(t, "trained", c.Info().Source)

	// Both artifact blobs were persisted.
	_, err := os.Stat(filepath.Join(dir, "vectorizer.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "classifier.json"))
	assert.NoError(t, err)
}

func TestClassifier_InitializeLoadsExistingArtifacts(t *testing.T) {
	dir := t.TempDir()

	first := NewClassifier(dir, 1000, nopLogger{})
	require.NoError(t, first.Initialize(toyCorpus(), false))

	second := NewClassifier(dir, 1000, nopLogger{})
	loaded := false
	second.OnLoaded(func() { loaded = true })
	require.NoError(t, second.Initialize(nil, false))

	assert.True(t, second.Ready())
	assert.True(t, loaded)
	assert.Equal(t, "loaded", second.Info().Source)

	// The loaded model predicts identically to the trained one.
	want, wantOK := first.Predict("pothole street")
	got, gotOK := second.Predict("pothole street")
	require.True(t, wantOK)
	require.True(t, gotOK)
	assert.Equal(t, want, got)
}

func TestClassifier_InitializeRetrainsOnCorruptArtifact(t *testing.T) {
	dir := t.TempDir()

	first := NewClassifier(dir, 1000, nopLogger{})
	require.NoError(t, first.Initialize(toyCorpus(), false))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "classifier.json"), []byte("{"), 0o644))

	second := NewClassifier(dir, 1000, nopLogger{})
	require.NoError(t, second.Initialize(toyCorpus(), false))

	assert.Equal(t, "trained", second.Info().Source)

	// The corrupt artifact was replaced with a valid one.
	third := NewClassifier(dir, 1000, nopLogger{})
	require.NoError(t, third.Initialize(nil, false))
	assert.Equal(t, "loaded", third.Info().Source)
}

func TestClassifier_ForceRetrainIgnoresArtifacts(t *testing.T) {
	dir := t.TempDir()

	first := NewClassifier(dir, 1000, nopLogger{})
	require.NoError(t, first.Initialize(toyCorpus(), false))

	second := NewClassifier(dir, 1000, nopLogger{})
	require.NoError(t, second.Initialize(toyCorpus(), true))
	assert.Equal(t, "trained", second.Info().Source)
}

func TestClassifier_InitializeEmptyCorpusFails(t *testing.T) {
	c := NewClassifier(t.TempDir(), 1000, nopLogger{})

	err := c.Initialize(nil, false)
	require.Error(t, err)
	assert.False(t, c.Ready())
}

func TestClassifier_PredictBeforeInitialize(t *testing.T) {
	c := NewClassifier(t.TempDir(), 1000, nopLogger{})

	_, ok := c.Predict("pothole street")
	assert.False(t, ok)
}

func TestClassifier_PredictEmptyText(t *testing.T) {
	c := NewClassifier(t.TempDir(), 1000, nopLogger{})
	require.NoError(t, c.Initialize(toyCorpus(), false))

	_, ok := c.Predict("")
	assert.False(t, ok)
}

func TestClassifier_Predict(t *testing.T) {
	c := NewClassifier(t.TempDir(), 1000, nopLogger{})
	require.NoError(t, c.Initialize(toyCorpus(), false))

	prediction, ok := c.Predict("hospital nurse")
	require.True(t, ok)
	assert.Equal(t, domain.CategoryHealthcare, prediction.Category)
	assert.Greater(t, prediction.Confidence, 0.0)
	assert.LessOrEqual(t, prediction.Confidence, 1.0)
}

func TestClassifier_Info(t *testing.T) {
	c := NewClassifier(t.TempDir(), 1000, nopLogger{})
	require.NoError(t, c.Initialize(toyCorpus(), false))

	info := c.Info()
	assert.ElementsMatch(t,
		[]string{"Municipal", "Healthcare", "Transport", "Other"},
		info.Classes,
	)
	assert.Positive(t, info.Features)
	assert.False(t, info.TrainedAt.IsZero())
}
