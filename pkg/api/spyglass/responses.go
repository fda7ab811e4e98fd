// Package spyglass defines the response envelopes of the analysis API.
package spyglass

import (
	"frameworks/api_insights/pkg/models"
	"frameworks/api_insights/pkg/validation"
)

// TrendAnalysisResponse carries per-series trend analyses plus the
// validation errors of skipped series.
type TrendAnalysisResponse struct {
	Results []models.TrendAnalysis `json:"results"`
	Errors  []validation.ItemError `json:"errors,omitempty"`
}

// ContentScoreResponse represents the response from content scoring
type ContentScoreResponse = models.ContentScore

// SentimentAnalysisResponse carries the corpus report plus the
// validation errors of skipped comments.
type SentimentAnalysisResponse struct {
	Report models.SentimentReport `json:"report"`
	Errors []validation.ItemError `json:"errors,omitempty"`
}

// EngagementAnalysisResponse carries the channel report plus the
// validation errors of skipped videos.
type EngagementAnalysisResponse struct {
	Report models.ChannelReport   `json:"report"`
	Errors []validation.ItemError `json:"errors,omitempty"`
}

// KeywordExtractResponse represents the response from keyword extraction
type KeywordExtractResponse struct {
	Keywords []models.KeywordCount `json:"keywords"`
}
