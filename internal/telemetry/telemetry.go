// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the grievance analyzer.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "grievance-analyzer"

// Metrics holds all analyzer Prometheus metrics.
type Metrics struct {
	AnalysesTotal     *prometheus.CounterVec
	AnalysisDuration  prometheus.Histogram
	DecisionPathTotal *prometheus.CounterVec
	ModelTrainedTotal prometheus.Counter
	ModelLoadedTotal  prometheus.Counter
}

// Provider wraps the tracer and metrics. All methods are safe on a nil
// receiver so callers never need to branch on whether telemetry is wired.
type Provider struct {
	Tracer   trace.Tracer
	Metrics  *Metrics
	registry *prometheus.Registry
}

// NewProvider initializes telemetry with a dedicated Prometheus registry so
// multiple providers (e.g. in tests) never collide on metric registration.
func NewProvider() *Provider {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	metrics := &Metrics{
		AnalysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "analyzer_analyses_total",
			Help: "Total complaints analyzed by category and priority",
		}, []string{"category", "priority"}),
		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "analyzer_analysis_duration_seconds",
			Help:    "Duration of a single complaint analysis",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		DecisionPathTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "analyzer_decision_path_total",
			Help: "Category decisions by decision path (keyword_strong, ml_confident, ...)",
		}, []string{"method"}),
		ModelTrainedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "analyzer_model_trained_total",
			Help: "Times the statistical classifier was retrained from the synthetic corpus",
		}),
		ModelLoadedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "analyzer_model_loaded_total",
			Help: "Times the statistical classifier was loaded from persisted artifacts",
		}),
	}

	return &Provider{
		Tracer:   otel.Tracer(serviceName),
		Metrics:  metrics,
		registry: registry,
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	if p == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// StartAnalysisSpan starts a span around one analysis. On a nil provider it
// returns a non-recording span.
func (p *Provider) StartAnalysisSpan(ctx context.Context) (context.Context, trace.Span) {
	if p == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return p.Tracer.Start(ctx, "analyzer.Analyze")
}

// RecordAnalysis records the outcome of one analysis.
func (p *Provider) RecordAnalysis(duration time.Duration, category, priority, method string) {
	if p == nil {
		return
	}
	p.Metrics.AnalysesTotal.WithLabelValues(category, priority).Inc()
	p.Metrics.AnalysisDuration.Observe(duration.Seconds())
	p.Metrics.DecisionPathTotal.WithLabelValues(method).Inc()
}

// RecordModelTrained records a retraining of the statistical classifier.
func (p *Provider) RecordModelTrained() {
	if p == nil {
		return
	}
	p.Metrics.ModelTrainedTotal.Inc()
}

// RecordModelLoaded records a successful artifact load.
func (p *Provider) RecordModelLoaded() {
	if p == nil {
		return
	}
	p.Metrics.ModelLoadedTotal.Inc()
}
