package engagement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frameworks/api_insights/pkg/logging"
	"frameworks/api_insights/pkg/models"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(logging.NewNopLogger())
}

func TestRate(t *testing.T) {
	rate := newTestAnalyzer().Rate(models.VideoRecord{Views: 1000, Likes: 50, Comments: 10})

	require.NotNil(t, rate)
	assert.InDelta(t, 6.0, *rate, 1e-9)
}

func TestRateRoundsToTwoDecimals(t *testing.T) {
	rate := newTestAnalyzer().Rate(models.VideoRecord{Views: 3, Likes: 1})

	require.NotNil(t, rate)
	// 1/3 * 100 = 33.333... rounds to 33.33.
	assert.InDelta(t, 33.33, *rate, 1e-9)
}

func TestRateUndefinedForZeroViews(t *testing.T) {
	assert.Nil(t, newTestAnalyzer().Rate(models.VideoRecord{Likes: 5, Comments: 5}))
}

func TestAggregate(t *testing.T) {
	summary := newTestAnalyzer().Aggregate([]models.VideoRecord{
		{VideoID: "a", Views: 1000, Likes: 50, Comments: 10},
		{VideoID: "b", Views: 0, Likes: 5, Comments: 5},
		{VideoID: "c", Views: 500, Likes: 40, Comments: 10},
	})

	assert.Equal(t, 3, summary.TotalVideos)
	assert.Equal(t, int64(1500), summary.TotalViews)
	assert.Equal(t, int64(95), summary.TotalLikes)
	assert.Equal(t, int64(25), summary.TotalComments)
	assert.InDelta(t, 500, summary.AverageViews, 1e-9)

	// The zero-view record is excluded from the rate average but still
	// counted in the totals: (6 + 10) / 2.
	assert.InDelta(t, 8, summary.AverageEngagementRate, 1e-9)

	require.NotNil(t, summary.BestPerforming)
	assert.Equal(t, "a", summary.BestPerforming.VideoID)
	require.NotNil(t, summary.BestPerforming.EngagementRate)
	assert.InDelta(t, 6, *summary.BestPerforming.EngagementRate, 1e-9)

	assert.InDelta(t, 95.0/1500, summary.LikesPerView, 1e-9)
	assert.InDelta(t, 25.0/1500, summary.CommentsPerView, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	summary := newTestAnalyzer().Aggregate(nil)

	assert.Zero(t, summary.TotalVideos)
	assert.Zero(t, summary.AverageViews)
	assert.Zero(t, summary.AverageEngagementRate)
	assert.Nil(t, summary.BestPerforming)
}

func TestAggregateAllZeroViews(t *testing.T) {
	summary := newTestAnalyzer().Aggregate([]models.VideoRecord{
		{VideoID: "a", Likes: 3},
		{VideoID: "b", Comments: 2},
	})

	assert.Equal(t, 2, summary.TotalVideos)
	assert.Zero(t, summary.AverageEngagementRate)
	assert.Zero(t, summary.LikesPerView)
	require.NotNil(t, summary.BestPerforming)
	assert.Nil(t, summary.BestPerforming.EngagementRate)
}

func TestSchedule(t *testing.T) {
	schedule := newTestAnalyzer().Schedule([]models.VideoRecord{
		// Mondays at 14:xx UTC.
		{VideoID: "a", Views: 100, PublishedAt: "2026-01-05T14:00:00Z"},
		{VideoID: "b", Views: 300, PublishedAt: "2026-01-12T14:30:00Z"},
		// Tuesday at 09:xx UTC.
		{VideoID: "c", Views: 50, PublishedAt: "2026-01-06T09:00:00Z"},
		// No timestamp: excluded from this view.
		{VideoID: "d", Views: 9999},
	})

	require.Len(t, schedule.TopDays, 2)
	assert.Equal(t, "Monday", schedule.TopDays[0].Slot)
	assert.InDelta(t, 200, schedule.TopDays[0].AverageViews, 1e-9)
	assert.Equal(t, 2, schedule.TopDays[0].VideoCount)
	assert.Equal(t, "Tuesday", schedule.TopDays[1].Slot)

	require.Len(t, schedule.TopHours, 2)
	assert.Equal(t, "14:00", schedule.TopHours[0].Slot)
	assert.InDelta(t, 200, schedule.TopHours[0].AverageViews, 1e-9)
	assert.Equal(t, "09:00", schedule.TopHours[1].Slot)
}

func TestScheduleKeepsTopThree(t *testing.T) {
	records := []models.VideoRecord{
		{VideoID: "a", Views: 500, PublishedAt: "2026-01-05T08:00:00Z"}, // Monday
		{VideoID: "b", Views: 400, PublishedAt: "2026-01-06T09:00:00Z"}, // Tuesday
		{VideoID: "c", Views: 300, PublishedAt: "2026-01-07T10:00:00Z"}, // Wednesday
		{VideoID: "d", Views: 200, PublishedAt: "2026-01-08T11:00:00Z"}, // Thursday
		{VideoID: "e", Views: 100, PublishedAt: "2026-01-09T12:00:00Z"}, // Friday
	}
	schedule := newTestAnalyzer().Schedule(records)

	require.Len(t, schedule.TopDays, 3)
	assert.Equal(t, "Monday", schedule.TopDays[0].Slot)
	assert.Equal(t, "Tuesday", schedule.TopDays[1].Slot)
	assert.Equal(t, "Wednesday", schedule.TopDays[2].Slot)
	assert.Len(t, schedule.TopHours, 3)
}

func TestScheduleEmpty(t *testing.T) {
	schedule := newTestAnalyzer().Schedule(nil)

	assert.Empty(t, schedule.TopDays)
	assert.Empty(t, schedule.TopHours)
}

func TestRollingTrend(t *testing.T) {
	trend := newTestAnalyzer().RollingTrend([]models.VideoRecord{
		{VideoID: "a", Views: 100, Likes: 10, PublishedAt: "2026-01-01T10:00:00Z"},  // rate 10
		{VideoID: "b", Views: 100, Likes: 20, PublishedAt: "2026-01-20T10:00:00Z"},  // rate 20
		{VideoID: "c", Views: 100, Likes: 30, PublishedAt: "2026-03-01T10:00:00Z"},  // rate 30
		{VideoID: "zero", Views: 0, Likes: 50, PublishedAt: "2026-01-20T12:00:00Z"}, // no rate
	})

	require.Len(t, trend, 3)
	assert.Equal(t, "2026-01-01", trend[0].Date)
	assert.InDelta(t, 10, trend[0].Value, 1e-9)

	// The 2026-01-20 window reaches back to 2025-12-22 and includes both
	// earlier uploads.
	assert.Equal(t, "2026-01-20", trend[1].Date)
	assert.InDelta(t, 15, trend[1].Value, 1e-9)

	// By March the January uploads have left the window.
	assert.Equal(t, "2026-03-01", trend[2].Date)
	assert.InDelta(t, 30, trend[2].Value, 1e-9)
}

func TestRollingTrendEmpty(t *testing.T) {
	assert.Empty(t, newTestAnalyzer().RollingTrend(nil))
}

func TestUploadFrequency(t *testing.T) {
	analyzer := newTestAnalyzer()
	records := make([]models.VideoRecord, 10)

	assert.InDelta(t, 5, analyzer.UploadFrequency(records, 60), 1e-9)
	assert.InDelta(t, 10, analyzer.UploadFrequency(records, 30), 1e-9)
	assert.Zero(t, analyzer.UploadFrequency(records, 0))
	assert.Zero(t, analyzer.UploadFrequency(nil, 30))
}

func TestTopVideos(t *testing.T) {
	records := []models.VideoRecord{
		{VideoID: "a", Views: 10},
		{VideoID: "b", Views: 60, Likes: 6},
		{VideoID: "c", Views: 30},
		{VideoID: "d", Views: 50},
		{VideoID: "e", Views: 20},
		{VideoID: "f", Views: 40},
	}
	top := newTestAnalyzer().TopVideos(records)

	require.Len(t, top, 5)
	assert.Equal(t, "b", top[0].VideoID)
	require.NotNil(t, top[0].EngagementRate)
	assert.InDelta(t, 10, *top[0].EngagementRate, 1e-9)
	assert.Equal(t, "d", top[1].VideoID)
	assert.Equal(t, "e", top[4].VideoID)

	// Input order is untouched.
	assert.Equal(t, "a", records[0].VideoID)
}

func TestReport(t *testing.T) {
	records := []models.VideoRecord{
		{VideoID: "a", Views: 1000, Likes: 50, Comments: 10, PublishedAt: "2026-01-05T14:00:00Z"},
		{VideoID: "b", Views: 500, Likes: 40, Comments: 10, PublishedAt: "2026-01-06T09:00:00Z"},
		{VideoID: "tiny", Views: 10, Likes: 1, PublishedAt: "2026-01-07T10:00:00Z"},
	}
	report := newTestAnalyzer().Report(records, 60, 100)

	// The minViews floor drops the 10-view record before any computation.
	assert.Equal(t, 2, report.Summary.TotalVideos)
	assert.Len(t, report.TopVideos, 2)
	assert.Equal(t, "a", report.TopVideos[0].VideoID)
	assert.Len(t, report.EngagementTrend, 2)
	assert.InDelta(t, 1.0, report.UploadsPerMonth, 1e-9)
	assert.Equal(t, "1.0 videos per month", report.UploadFrequency)
}

func TestReportEmpty(t *testing.T) {
	report := newTestAnalyzer().Report(nil, 90, 0)

	assert.Zero(t, report.Summary.TotalVideos)
	assert.Empty(t, report.TopVideos)
	assert.Empty(t, report.EngagementTrend)
	assert.Zero(t, report.UploadsPerMonth)
	assert.Equal(t, "0.0 videos per month", report.UploadFrequency)
}

func TestReportIdempotent(t *testing.T) {
	analyzer := newTestAnalyzer()
	records := []models.VideoRecord{
		{VideoID: "a", Views: 1000, Likes: 50, Comments: 10, PublishedAt: "2026-01-05T14:00:00Z"},
		{VideoID: "b", Views: 500, Likes: 40, Comments: 10, PublishedAt: "2026-01-06T09:00:00Z"},
	}

	assert.Equal(t, analyzer.Report(records, 30, 0), analyzer.Report(records, 30, 0))
}
