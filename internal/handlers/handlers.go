// Package handlers exposes the analysis engine over HTTP. The handlers
// validate inbound payloads, hand clean data to the engine and wrap the
// results in the API envelopes; all computation lives in the engine
// packages.
package handlers

import (
	"net/http"
	"time"

	"frameworks/api_insights/internal/engagement"
	"frameworks/api_insights/internal/keywords"
	"frameworks/api_insights/internal/metrics"
	"frameworks/api_insights/internal/seo"
	"frameworks/api_insights/internal/sentiment"
	"frameworks/api_insights/internal/trends"
	"frameworks/api_insights/pkg/api/common"
	"frameworks/api_insights/pkg/api/spyglass"
	"frameworks/api_insights/pkg/logging"
	"frameworks/api_insights/pkg/middleware"
	"frameworks/api_insights/pkg/models"
	"frameworks/api_insights/pkg/validation"
)

// defaultLookbackDays drives upload-frequency normalization when the
// request does not supply a window.
const defaultLookbackDays = 90

// Analyzers bundles the engine components behind the API.
type Analyzers struct {
	Trends     *trends.Analyzer
	Content    *seo.Scorer
	Sentiment  *sentiment.Analyzer
	Engagement *engagement.Analyzer
	Keywords   *keywords.Extractor
}

// AnalysisHandler serves the analysis endpoints.
type AnalysisHandler struct {
	analyzers Analyzers
	validator *validation.InputValidator
	logger    logging.Logger
	metrics   *metrics.Metrics
}

// NewAnalysisHandler creates the handler over wired analyzers.
func NewAnalysisHandler(analyzers Analyzers, logger logging.Logger, m *metrics.Metrics) *AnalysisHandler {
	return &AnalysisHandler{
		analyzers: analyzers,
		validator: validation.NewInputValidator(),
		logger:    logger,
		metrics:   m,
	}
}

// RegisterRoutes attaches the analysis endpoints to the router.
func (h *AnalysisHandler) RegisterRoutes(router middleware.Engine) {
	api := router.Group("/api")
	api.POST("/trends/analyze", h.AnalyzeTrends)
	api.POST("/content/score", h.ScoreContent)
	api.POST("/sentiment/analyze", h.AnalyzeSentiment)
	api.POST("/engagement/analyze", h.AnalyzeEngagement)
	api.POST("/keywords/extract", h.ExtractKeywords)
}

// AnalyzeTrends runs batch trend analysis over interest series.
func (h *AnalysisHandler) AnalyzeTrends(c middleware.Context) {
	start := time.Now()

	var req validation.TrendAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err))
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.observe("trends", "validation_failed", start)
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err))
		return
	}

	valid, itemErrs, err := h.validator.SeriesBatch(req.Series, validation.ParseMode(req.OnInvalid))
	if err != nil {
		h.observe("trends", "validation_failed", start)
		c.JSON(http.StatusUnprocessableEntity, common.NewErrorResponse(err))
		return
	}

	results, err := h.analyzers.Trends.AnalyzeBatch(c.Request.Context(), valid)
	if err != nil {
		h.observe("trends", "error", start)
		h.logger.WithError(err).Error("Trend batch analysis failed")
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err))
		return
	}

	h.observe("trends", "success", start)
	h.countItems("trends", len(valid), len(itemErrs))
	c.JSON(http.StatusOK, spyglass.TrendAnalysisResponse{Results: results, Errors: itemErrs})
}

// ScoreContent audits one content document.
func (h *AnalysisHandler) ScoreContent(c middleware.Context) {
	start := time.Now()

	var req validation.ContentScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err))
		return
	}

	score := h.analyzers.Content.Score(models.ContentDocument{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Tags:        req.Tags,
	})

	h.observe("content", "success", start)
	c.JSON(http.StatusOK, score)
}

// AnalyzeSentiment runs the corpus sentiment report over comments.
func (h *AnalysisHandler) AnalyzeSentiment(c middleware.Context) {
	start := time.Now()

	var req validation.SentimentAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err))
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.observe("sentiment", "validation_failed", start)
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err))
		return
	}

	valid, itemErrs, err := h.validator.CommentBatch(req.Comments, validation.ParseMode(req.OnInvalid))
	if err != nil {
		h.observe("sentiment", "validation_failed", start)
		c.JSON(http.StatusUnprocessableEntity, common.NewErrorResponse(err))
		return
	}

	report := h.analyzers.Sentiment.Report(valid)
	report.Skipped = len(itemErrs)

	h.observe("sentiment", "success", start)
	h.countItems("sentiment", len(valid), len(itemErrs))
	c.JSON(http.StatusOK, spyglass.SentimentAnalysisResponse{Report: report, Errors: itemErrs})
}

// AnalyzeEngagement runs the channel engagement report over videos.
func (h *AnalysisHandler) AnalyzeEngagement(c middleware.Context) {
	start := time.Now()

	var req validation.EngagementAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err))
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.observe("engagement", "validation_failed", start)
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err))
		return
	}

	valid, itemErrs, err := h.validator.VideoBatch(req.Videos, validation.ParseMode(req.OnInvalid))
	if err != nil {
		h.observe("engagement", "validation_failed", start)
		c.JSON(http.StatusUnprocessableEntity, common.NewErrorResponse(err))
		return
	}

	lookback := req.LookbackDays
	if lookback <= 0 {
		lookback = defaultLookbackDays
	}
	report := h.analyzers.Engagement.Report(valid, lookback, req.MinViews)
	report.Skipped = len(itemErrs)

	h.observe("engagement", "success", start)
	h.countItems("engagement", len(valid), len(itemErrs))
	c.JSON(http.StatusOK, spyglass.EngagementAnalysisResponse{Report: report, Errors: itemErrs})
}

// ExtractKeywords ranks keywords in free text.
func (h *AnalysisHandler) ExtractKeywords(c middleware.Context) {
	start := time.Now()

	var req validation.KeywordExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err))
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.observe("keywords", "validation_failed", start)
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err))
		return
	}

	extracted := h.analyzers.Keywords.Extract(req.Text, req.Limit)

	h.observe("keywords", "success", start)
	c.JSON(http.StatusOK, spyglass.KeywordExtractResponse{Keywords: extracted})
}

func (h *AnalysisHandler) observe(analyzer, status string, start time.Time) {
	if h.metrics == nil {
		return
	}
	h.metrics.Analyses.WithLabelValues(analyzer, status).Inc()
	h.metrics.AnalysisDuration.WithLabelValues(analyzer).Observe(time.Since(start).Seconds())
}

func (h *AnalysisHandler) countItems(analyzer string, analyzed, skipped int) {
	if h.metrics == nil {
		return
	}
	h.metrics.ItemsProcessed.WithLabelValues(analyzer, "analyzed").Add(float64(analyzed))
	if skipped > 0 {
		h.metrics.ItemsProcessed.WithLabelValues(analyzer, "skipped").Add(float64(skipped))
	}
}
