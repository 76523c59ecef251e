// Package analyzer implements the hybrid complaint classification pipeline:
// keyword scoring over raw text, a statistical fallback over normalized text,
// rule-based sentiment, and priority derivation.
package analyzer

import (
	"context"
	"strings"
	"time"

	"github.com/jonesrussell/grievance-analyzer/internal/domain"
	"github.com/jonesrussell/grievance-analyzer/internal/ml"
	"github.com/jonesrussell/grievance-analyzer/internal/telemetry"
)

// Category decision constants.
const (
	strongMatchCount        = 2   // distinct keyword hits that make keyword evidence authoritative
	strongConfidenceDivisor = 5.0 // confidence = count/5, capped at 1.0
	weakConfidenceDivisor   = 3.0 // confidence = count/3, capped below
	weakConfidenceCap       = 0.7
	mlConfidenceGate        = 0.6 // minimum ML confidence to outrank weak keyword evidence
	defaultConfidence       = 0.5
)

// Logger defines the logging interface used by the analyzer.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// StatisticalClassifier supplies an optional category prediction for
// normalized text. The boolean reports whether a prediction is available;
// unavailable is a normal outcome, never an error.
type StatisticalClassifier interface {
	Predict(normalized string) (ml.Prediction, bool)
}

// Service performs complaint analysis. It is immutable after construction
// and safe for concurrent use: the keyword table and the fitted classifier
// are shared read-only state, and per-request work is pure.
type Service struct {
	scorer    *KeywordScorer
	sentiment *SentimentAnalyzer
	priority  *PriorityResolver
	predictor StatisticalClassifier
	telemetry *telemetry.Provider
	logger    Logger
}

// NewService creates an analysis service. predictor may be nil, in which case
// classification runs on keyword evidence alone. telemetry may be nil.
func NewService(logger Logger, predictor StatisticalClassifier, tp *telemetry.Provider) *Service {
	return &Service{
		scorer:    NewKeywordScorer(DefaultKeywordTable()),
		sentiment: NewSentimentAnalyzer(),
		priority:  NewPriorityResolver(),
		predictor: predictor,
		telemetry: tp,
		logger:    logger,
	}
}

// Analyze classifies one complaint. Title and description may each be empty;
// fully empty input yields the default result (Other, 0.5, Neutral, Medium).
func (s *Service) Analyze(ctx context.Context, title, description string) (*domain.AnalysisResult, error) {
	startTime := time.Now()

	_, span := s.telemetry.StartAnalysisSpan(ctx)
	defer span.End()

	text := strings.TrimSpace(title + " " + description)

	category, confidence, method := s.resolveCategory(text)
	sentiment := s.sentiment.Analyze(text)
	priority := s.priority.Resolve(text, sentiment, category)

	result := &domain.AnalysisResult{
		Category:         category,
		Confidence:       clampConfidence(confidence),
		Sentiment:        sentiment,
		Priority:         priority,
		Method:           method,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	}

	s.telemetry.RecordAnalysis(time.Since(startTime), string(category), string(priority), method)

	s.logger.Debug("complaint analyzed",
		"title", title,
		"category", result.Category,
		"confidence", result.Confidence,
		"sentiment", result.Sentiment,
		"priority", result.Priority,
		"method", result.Method,
	)

	return result, nil
}

// AnalyzeBatch analyzes multiple complaints sequentially. Per-item results
// line up with the input order.
func (s *Service) AnalyzeBatch(ctx context.Context, complaints []Complaint) ([]*domain.AnalysisResult, error) {
	results := make([]*domain.AnalysisResult, len(complaints))
	for i, c := range complaints {
		result, err := s.Analyze(ctx, c.Title, c.Description)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	return results, nil
}

// Complaint is one complaint submission.
type Complaint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// resolveCategory merges keyword and statistical evidence into a final
// (category, confidence) decision. The table is evaluated strictly in order:
//  1. keyword evidence with >= 2 distinct hits is authoritative
//  2. a statistical prediction above the confidence gate
//  3. weak keyword evidence (a single hit)
//  4. any statistical prediction at all
//  5. the default (Other, 0.5)
func (s *Service) resolveCategory(text string) (domain.Category, float64, string) {
	if text == "" {
		return domain.CategoryOther, defaultConfidence, domain.MethodDefault
	}

	scores := s.scorer.Score(text)
	best, bestCount, hasKeywords := s.scorer.Best(scores)

	var prediction ml.Prediction
	predicted := false
	if s.predictor != nil {
		prediction, predicted = s.predictor.Predict(Normalize(text))
	}

	switch {
	case hasKeywords && bestCount >= strongMatchCount:
		confidence := float64(bestCount) / strongConfidenceDivisor
		if confidence > 1.0 {
			confidence = 1.0
		}
		return best, confidence, domain.MethodKeywordStrong

	case predicted && prediction.Confidence > mlConfidenceGate:
		return prediction.Category, prediction.Confidence, domain.MethodMLConfident

	case hasKeywords:
		confidence := float64(bestCount) / weakConfidenceDivisor
		if confidence > weakConfidenceCap {
			confidence = weakConfidenceCap
		}
		return best, confidence, domain.MethodKeywordWeak

	case predicted:
		return prediction.Category, prediction.Confidence, domain.MethodMLFallback

	default:
		return domain.CategoryOther, defaultConfidence, domain.MethodDefault
	}
}

// TrainingExamples builds the synthetic training corpus for the statistical
// classifier: every keyword phrase becomes one example labeled with its
// category, plus three generic examples labeled Other. Examples are
// normalized so the fitted vocabulary lives in the same token space the
// classifier sees at prediction time.
func TrainingExamples() []ml.Example {
	table := DefaultKeywordTable()
	examples := make([]ml.Example, 0, 128)

	for _, entry := range table {
		for _, phrase := range entry.Phrases {
			examples = append(examples, ml.Example{Text: Normalize(phrase), Label: entry.Category})
		}
	}

	for _, text := range []string{"general issue", "other problem", "miscellaneous"} {
		examples = append(examples, ml.Example{Text: Normalize(text), Label: domain.CategoryOther})
	}

	return examples
}

func clampConfidence(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
