package models

import "time"

// InterestSeries is one keyword's interest-over-time values sampled at a
// uniform cadence; the index position is the time axis
type InterestSeries struct {
	Keyword string    `json:"keyword"`
	Values  []float64 `json:"values"`
}

// TrendAnalysis summarizes the signal of a single interest series
type TrendAnalysis struct {
	Keyword     string    `json:"keyword"`
	SampleCount int       `json:"sample_count"`
	Mean        float64   `json:"mean"`
	Median      float64   `json:"median"`
	StdDev      float64   `json:"std_dev"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	Volatility  float64   `json:"volatility"`
	Momentum    float64   `json:"momentum"`
	Direction   string    `json:"direction"`
	Forecast    []float64 `json:"forecast,omitempty"`
}

// ContentDocument is the text surface of one piece of content. Body
// holds long-form text such as a video script. Absent fields skip
// their audit checks; a non-nil empty tag list is an audited field.
type ContentDocument struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
}

// ContentScore is the quality audit result for a content document
type ContentScore struct {
	SEOScore        float64            `json:"seo_score"`
	Readability     float64            `json:"readability"`
	KeywordDensity  map[string]float64 `json:"keyword_density"`
	Recommendations []string           `json:"recommendations"`
}

// CommentUnit is one piece of audience text with an optional weight and
// publish timestamp (RFC3339)
type CommentUnit struct {
	Text        string `json:"text"`
	Likes       *int64 `json:"likes,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// PublishedTime parses the unit's publish timestamp. The second return
// is false when the timestamp is absent or not RFC3339.
func (u *CommentUnit) PublishedTime() (time.Time, bool) {
	if u.PublishedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, u.PublishedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// UnitSentiment carries both scoring methods for one text unit. The
// lexicon pair and the classifier pair are independent readings and are
// reported side by side.
type UnitSentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Label        string  `json:"label"`
	Confidence   float64 `json:"confidence"`
}

// CorpusSentiment aggregates unit sentiment across a corpus
type CorpusSentiment struct {
	UnitCount           int            `json:"unit_count"`
	AveragePolarity     float64        `json:"average_polarity"`
	AverageSubjectivity float64        `json:"average_subjectivity"`
	PositivePercentage  float64        `json:"positive_percentage"`
	LabelDistribution   map[string]int `json:"label_distribution"`
}

// Topic is a recurring noun/adjective phrase with its mention count
type Topic struct {
	Phrase   string `json:"phrase"`
	Mentions int    `json:"mentions"`
}

// TopicSentiment is a topic with the mean lexicon polarity of the units
// mentioning it
type TopicSentiment struct {
	Phrase   string  `json:"phrase"`
	Mentions int     `json:"mentions"`
	Polarity float64 `json:"polarity"`
}

// DateValue is a single calendar-date aggregate point
type DateValue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// SentimentReport composes the full corpus analysis. Units carries both
// scoring methods per input unit, in input order.
type SentimentReport struct {
	Overall   CorpusSentiment  `json:"overall"`
	KeyThemes []TopicSentiment `json:"key_themes"`
	Temporal  []DateValue      `json:"temporal"`
	Units     []UnitSentiment  `json:"units,omitempty"`
	Skipped   int              `json:"skipped,omitempty"`
}

// VideoRecord is the metadata of one published video
type VideoRecord struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	PublishedAt string `json:"published_at,omitempty"`
}

// PublishedTime parses the record's publish timestamp. The second return
// is false when the timestamp is absent or not RFC3339.
func (v *VideoRecord) PublishedTime() (time.Time, bool) {
	if v.PublishedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v.PublishedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// VideoEngagement is one video with its computed engagement rate. The
// rate is nil when the video has zero views.
type VideoEngagement struct {
	VideoID        string   `json:"video_id"`
	Title          string   `json:"title"`
	Views          int64    `json:"views"`
	EngagementRate *float64 `json:"engagement_rate,omitempty"`
}

// EngagementSummary aggregates engagement across a set of videos
type EngagementSummary struct {
	TotalVideos           int              `json:"total_videos"`
	TotalViews            int64            `json:"total_views"`
	TotalLikes            int64            `json:"total_likes"`
	TotalComments         int64            `json:"total_comments"`
	AverageViews          float64          `json:"average_views"`
	AverageEngagementRate float64          `json:"average_engagement_rate"`
	LikesPerView          float64          `json:"likes_per_view"`
	CommentsPerView       float64          `json:"comments_per_view"`
	BestPerforming        *VideoEngagement `json:"best_performing,omitempty"`
}

// ScheduleSlot aggregates views for one posting slot (a weekday or an
// hour of day)
type ScheduleSlot struct {
	Slot         string  `json:"slot"`
	AverageViews float64 `json:"average_views"`
	VideoCount   int     `json:"video_count"`
}

// UploadSchedule ranks the best performing posting slots
type UploadSchedule struct {
	TopDays  []ScheduleSlot `json:"top_days"`
	TopHours []ScheduleSlot `json:"top_hours"`
}

// ChannelReport is the full engagement analysis for a set of videos
type ChannelReport struct {
	Summary         EngagementSummary `json:"summary"`
	TopVideos       []VideoEngagement `json:"top_videos"`
	Schedule        UploadSchedule    `json:"schedule"`
	EngagementTrend []DateValue       `json:"engagement_trend"`
	UploadsPerMonth float64           `json:"uploads_per_month"`
	UploadFrequency string            `json:"upload_frequency"`
	Skipped         int               `json:"skipped,omitempty"`
}

// KeywordCount is one extracted keyword with its frequency
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// TagSuggestions aggregates word usage across a set of content documents
type TagSuggestions struct {
	TitleWords       []KeywordCount `json:"title_words"`
	DescriptionWords []KeywordCount `json:"description_words"`
	Tags             []KeywordCount `json:"tags"`
}
