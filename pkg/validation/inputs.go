package validation

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"frameworks/api_insights/pkg/models"
)

// Mode selects how batch validation treats invalid items. Skip drops
// them and reports indexed errors; abort fails on the first one.
type Mode string

const (
	ModeSkip  Mode = "skip"
	ModeAbort Mode = "abort"
)

// ParseMode maps a wire value to a Mode, defaulting to skip.
func ParseMode(s string) Mode {
	if Mode(s) == ModeAbort {
		return ModeAbort
	}
	return ModeSkip
}

// ItemError reports a validation failure for one item of a batch.
type ItemError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// TrendAnalysisRequest is the inbound envelope for batch trend analysis.
// The batch cap is a transport limit; the analyzer itself accepts any
// series count.
type TrendAnalysisRequest struct {
	Series    []models.InterestSeries `json:"series" validate:"max=100"`
	OnInvalid string                  `json:"on_invalid" validate:"omitempty,oneof=skip abort"`
}

// ContentScoreRequest carries one document for scoring. Absent fields
// skip their audit checks rather than failing.
type ContentScoreRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
}

// SentimentAnalysisRequest is the inbound envelope for corpus sentiment
// analysis.
type SentimentAnalysisRequest struct {
	Comments  []models.CommentUnit `json:"comments" validate:"max=5000"`
	OnInvalid string               `json:"on_invalid" validate:"omitempty,oneof=skip abort"`
}

// EngagementAnalysisRequest is the inbound envelope for channel
// engagement analysis.
type EngagementAnalysisRequest struct {
	Videos       []models.VideoRecord `json:"videos" validate:"max=10000"`
	LookbackDays int                  `json:"lookback_days" validate:"omitempty,gt=0"`
	MinViews     int64                `json:"min_views" validate:"omitempty,gte=0"`
	OnInvalid    string               `json:"on_invalid" validate:"omitempty,oneof=skip abort"`
}

// KeywordExtractRequest is the inbound envelope for keyword extraction.
type KeywordExtractRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit" validate:"omitempty,gt=0,lte=50"`
}

// InputValidator performs structural and per-item validation for the
// analysis API before inputs reach the engine. Degenerate but
// well-formed inputs (empty series, zero views) are the engine's
// concern and pass through untouched; this layer rejects malformed
// items only.
type InputValidator struct {
	validator *validator.Validate
}

// NewInputValidator constructs an InputValidator with standard struct validation.
func NewInputValidator() *InputValidator {
	return &InputValidator{
		validator: validator.New(),
	}
}

// Struct applies tag-based validation to a request envelope.
func (v *InputValidator) Struct(req interface{}) error {
	if err := v.validator.Struct(req); err != nil {
		return fmt.Errorf("request validation failed: %w", err)
	}
	return nil
}

// ValidateSeries checks a single interest series for malformed values.
func (v *InputValidator) ValidateSeries(s *models.InterestSeries) error {
	if s.Keyword == "" {
		return fmt.Errorf("series missing keyword")
	}
	for i, val := range s.Values {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("series %q value %d is not finite", s.Keyword, i)
		}
		if val < 0 {
			return fmt.Errorf("series %q value %d is negative", s.Keyword, i)
		}
	}
	return nil
}

// ValidateComment checks a single comment unit.
func (v *InputValidator) ValidateComment(u *models.CommentUnit) error {
	if u.Text == "" {
		return fmt.Errorf("comment missing text")
	}
	if u.Likes != nil && *u.Likes < 0 {
		return fmt.Errorf("comment has negative likes %d", *u.Likes)
	}
	if u.PublishedAt != "" {
		if _, err := time.Parse(time.RFC3339, u.PublishedAt); err != nil {
			return fmt.Errorf("comment timestamp %q is not RFC3339: %w", u.PublishedAt, err)
		}
	}
	return nil
}

// ValidateVideo checks a single video record.
func (v *InputValidator) ValidateVideo(r *models.VideoRecord) error {
	if r.VideoID == "" {
		return fmt.Errorf("video missing video_id")
	}
	if r.Views < 0 {
		return fmt.Errorf("video %s has negative views %d", r.VideoID, r.Views)
	}
	if r.Likes < 0 {
		return fmt.Errorf("video %s has negative likes %d", r.VideoID, r.Likes)
	}
	if r.Comments < 0 {
		return fmt.Errorf("video %s has negative comments %d", r.VideoID, r.Comments)
	}
	if r.PublishedAt != "" {
		if _, err := time.Parse(time.RFC3339, r.PublishedAt); err != nil {
			return fmt.Errorf("video %s timestamp %q is not RFC3339: %w", r.VideoID, r.PublishedAt, err)
		}
	}
	return nil
}

// SeriesBatch validates a batch per item. Skip mode drops invalid items
// and reports them by index; abort mode fails the whole batch on the
// first invalid item.
func (v *InputValidator) SeriesBatch(series []models.InterestSeries, mode Mode) ([]models.InterestSeries, []ItemError, error) {
	valid := make([]models.InterestSeries, 0, len(series))
	var itemErrs []ItemError
	for i := range series {
		if err := v.ValidateSeries(&series[i]); err != nil {
			if mode == ModeAbort {
				return nil, nil, fmt.Errorf("series %d validation failed: %w", i, err)
			}
			itemErrs = append(itemErrs, ItemError{Index: i, Error: err.Error()})
			continue
		}
		valid = append(valid, series[i])
	}
	return valid, itemErrs, nil
}

// CommentBatch validates a batch per item, with the same skip and abort
// semantics as SeriesBatch.
func (v *InputValidator) CommentBatch(units []models.CommentUnit, mode Mode) ([]models.CommentUnit, []ItemError, error) {
	valid := make([]models.CommentUnit, 0, len(units))
	var itemErrs []ItemError
	for i := range units {
		if err := v.ValidateComment(&units[i]); err != nil {
			if mode == ModeAbort {
				return nil, nil, fmt.Errorf("comment %d validation failed: %w", i, err)
			}
			itemErrs = append(itemErrs, ItemError{Index: i, Error: err.Error()})
			continue
		}
		valid = append(valid, units[i])
	}
	return valid, itemErrs, nil
}

// VideoBatch validates a batch per item, with the same skip and abort
// semantics as SeriesBatch.
func (v *InputValidator) VideoBatch(records []models.VideoRecord, mode Mode) ([]models.VideoRecord, []ItemError, error) {
	valid := make([]models.VideoRecord, 0, len(records))
	var itemErrs []ItemError
	for i := range records {
		if err := v.ValidateVideo(&records[i]); err != nil {
			if mode == ModeAbort {
				return nil, nil, fmt.Errorf("video %d validation failed: %w", i, err)
			}
			itemErrs = append(itemErrs, ItemError{Index: i, Error: err.Error()})
			continue
		}
		valid = append(valid, records[i])
	}
	return valid, itemErrs, nil
}
