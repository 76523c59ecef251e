// Package api exposes the grievance analyzer over HTTP.
package api

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/grievance-analyzer/internal/analyzer"
	"github.com/jonesrussell/grievance-analyzer/internal/domain"
	"github.com/jonesrussell/grievance-analyzer/internal/ml"
)

// Handler handles HTTP requests for the analyzer API.
type Handler struct {
	service *analyzer.Service
	model   *ml.Classifier
	logger  Logger
}

// Logger defines the logging interface.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// NewHandler creates a new API handler.
func NewHandler(service *analyzer.Service, model *ml.Classifier, logger Logger) *Handler {
	return &Handler{
		service: service,
		model:   model,
		logger:  logger,
	}
}

// AnalyzeRequest represents a single complaint analysis request. Both fields
// are optional; an empty complaint still produces the default result.
type AnalyzeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AnalyzeResponse represents a complaint analysis response.
type AnalyzeResponse struct {
	Category   domain.Category  `json:"category"`
	Sentiment  domain.Sentiment `json:"sentiment"`
	Priority   domain.Priority  `json:"priority"`
	Confidence float64          `json:"confidence"`
}

// BatchAnalyzeRequest represents a batch analysis request.
type BatchAnalyzeRequest struct {
	Complaints []analyzer.Complaint `json:"complaints" binding:"required,min=1,max=100"`
}

// BatchAnalyzeResponse represents a batch analysis response.
type BatchAnalyzeResponse struct {
	Results []AnalyzeResponse `json:"results"`
	Total   int               `json:"total"`
	Success int               `json:"success"`
	Failed  int               `json:"failed"`
}

// Root handles GET /.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Grievance AI Service is running",
		"status":  "OK",
	})
}

// Health handles GET /api/health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "AI Analysis Service",
	})
}

// Ready handles GET /ready. The service is ready once the statistical model
// has been loaded or trained.
func (h *Handler) Ready(c *gin.Context) {
	if h.model == nil || !h.model.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Analyze handles POST /api/analyze.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	// An empty body is a valid request: both fields default to "".
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			h.logger.Warn("Invalid analysis request", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.service.Analyze(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		h.logger.Error("Analysis failed", "title", req.Title, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Analysis error: %s", err),
		})
		return
	}

	c.JSON(http.StatusOK, toAnalyzeResponse(result))
}

// AnalyzeBatch handles POST /api/analyze/batch.
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	var req BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid batch analysis request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logger.Info("Batch analyzing complaints", "batch_size", len(req.Complaints))

	results, err := h.service.AnalyzeBatch(c.Request.Context(), req.Complaints)
	if err != nil {
		h.logger.Error("Batch analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Analysis error: %s", err),
		})
		return
	}

	responses := make([]AnalyzeResponse, len(results))
	for i, result := range results {
		responses[i] = toAnalyzeResponse(result)
	}

	c.JSON(http.StatusOK, BatchAnalyzeResponse{
		Results: responses,
		Total:   len(responses),
		Success: len(responses),
		Failed:  0,
	})
}

// ModelInfo handles GET /api/model.
func (h *Handler) ModelInfo(c *gin.Context) {
	if h.model == nil || !h.model.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not initialized"})
		return
	}
	c.JSON(http.StatusOK, h.model.Info())
}

func toAnalyzeResponse(result *domain.AnalysisResult) AnalyzeResponse {
	return AnalyzeResponse{
		Category:   result.Category,
		Sentiment:  result.Sentiment,
		Priority:   result.Priority,
		Confidence: roundConfidence(result.Confidence),
	}
}

// roundConfidence rounds to two decimal places for the response contract.
func roundConfidence(confidence float64) float64 {
	return math.Round(confidence*100) / 100
}
