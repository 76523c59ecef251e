// Package ml implements the statistical fallback classifier: a TF-IDF
// vectorizer plus a multinomial logistic regression, trained offline from a
// synthetic corpus and persisted as a pair of artifact blobs.
package ml

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonesrussell/grievance-analyzer/internal/domain"
)

// Logger defines the logging interface used by the classifier.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Example is one labeled training document.
type Example struct {
	Text  string
	Label domain.Category
}

// Prediction is a statistical category prediction with the maximum class
// probability as its confidence.
type Prediction struct {
	Category   domain.Category
	Confidence float64
}

// ModelInfo describes the loaded model for diagnostics.
type ModelInfo struct {
	Classes   []string  `json:"classes"`
	Features  int       `json:"features"`
	TrainedAt time.Time `json:"trained_at"`
	Source    string    `json:"source"` // "loaded" or "trained"
}

// Classifier owns the fitted vectorizer and linear model. Initialize must
// complete before predictions are served; afterwards the fitted state is
// immutable and shared read-only across all request handlers.
type Classifier struct {
	store       *ArtifactStore
	logger      Logger
	maxFeatures int

	mu         sync.Mutex // guards initialization only
	vectorizer *Vectorizer
	model      *LinearModel
	info       ModelInfo
	ready      bool

	// onTrained/onLoaded report lifecycle outcomes to telemetry; either may
	// be nil.
	onTrained func()
	onLoaded  func()
}

// NewClassifier creates an uninitialized classifier persisting artifacts
// under modelDir.
func NewClassifier(modelDir string, maxFeatures int, logger Logger) *Classifier {
	return &Classifier{
		store:       NewArtifactStore(modelDir),
		logger:      logger,
		maxFeatures: maxFeatures,
	}
}

// OnTrained registers a callback invoked after a successful retrain.
func (c *Classifier) OnTrained(fn func()) { c.onTrained = fn }

// OnLoaded registers a callback invoked after a successful artifact load.
func (c *Classifier) OnLoaded(fn func()) { c.onLoaded = fn }

// Initialize loads the persisted artifacts, or retrains from the given
// corpus and persists the result when loading fails for any reason. It is
// guarded so concurrent callers train at most once, and it must complete
// before the service accepts traffic.
func (c *Classifier) Initialize(examples []Example, forceRetrain bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready {
		return nil
	}

	if !forceRetrain {
		vectorizer, model, trainedAt, err := c.store.Load()
		if err == nil {
			c.vectorizer = vectorizer
			c.model = model
			c.info = ModelInfo{
				Classes:   model.Classes,
				Features:  vectorizer.Features(),
				TrainedAt: trainedAt,
				Source:    "loaded",
			}
			c.ready = true
			if c.onLoaded != nil {
				c.onLoaded()
			}
			c.logger.Info("classifier artifacts loaded",
				"dir", c.store.Dir(),
				"classes", len(model.Classes),
				"features", vectorizer.Features(),
			)
			return nil
		}
		c.logger.Warn("classifier artifacts unavailable, retraining", "error", err)
	}

	return c.train(examples)
}

// train fits the vectorizer and model on the synthetic corpus and persists
// both artifacts. The corpus has no external-data dependency, so training is
// expected to always succeed.
func (c *Classifier) train(examples []Example) error {
	if len(examples) == 0 {
		return fmt.Errorf("train classifier: empty corpus")
	}

	start := time.Now()

	docs := make([]string, len(examples))
	labels := make([]string, len(examples))
	for i, ex := range examples {
		docs[i] = ex.Text
		labels[i] = string(ex.Label)
	}

	vectorizer := NewVectorizer(c.maxFeatures)
	vectorizer.Fit(docs)

	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = vectorizer.Transform(doc)
	}

	model := TrainLinearModel(vectors, labels)
	trainedAt := time.Now().UTC()

	if err := c.store.Save(vectorizer, model, trainedAt); err != nil {
		return fmt.Errorf("persist classifier artifacts: %w", err)
	}

	c.vectorizer = vectorizer
	c.model = model
	c.info = ModelInfo{
		Classes:   model.Classes,
		Features:  vectorizer.Features(),
		TrainedAt: trainedAt,
		Source:    "trained",
	}
	c.ready = true
	if c.onTrained != nil {
		c.onTrained()
	}

	c.logger.Info("classifier trained",
		"examples", len(examples),
		"classes", len(model.Classes),
		"features", vectorizer.Features(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}

// Predict vectorizes the normalized text and returns the most probable
// category. The boolean is false when no prediction is available: an
// uninitialized model or input with no recognizable tokens. Prediction never
// fails upward; absence of a signal is the failure mode.
func (c *Classifier) Predict(normalized string) (Prediction, bool) {
	if !c.Ready() || normalized == "" {
		return Prediction{}, false
	}

	x := c.vectorizer.Transform(normalized)
	label, confidence := c.model.Predict(x)

	category := domain.Category(label)
	if !category.Valid() {
		return Prediction{}, false
	}

	return Prediction{Category: category, Confidence: confidence}, true
}

// Ready reports whether Initialize has completed.
func (c *Classifier) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Info returns model diagnostics. Zero value before initialization.
func (c *Classifier) Info() ModelInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.info
}
