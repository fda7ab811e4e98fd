// Package engagement aggregates video metadata into engagement rates,
// portfolio summaries, posting-schedule rankings and rolling trends.
package engagement

import (
	"fmt"
	"math"
	"sort"
	"time"

	"frameworks/api_insights/pkg/logging"
	"frameworks/api_insights/pkg/models"
)

const (
	// rollingWindowDays is the trailing window of the engagement trend:
	// a date's value averages the rates of that date and the 29 before it.
	rollingWindowDays = 30

	// uploadPeriodDays normalizes upload frequency to videos per 30-day
	// period.
	uploadPeriodDays = 30

	topSlotCount  = 3
	topVideoCount = 5
)

// trendDateFormat keys the rolling engagement trend.
const trendDateFormat = "2006-01-02"

// Analyzer computes engagement metrics over video records.
type Analyzer struct {
	logger logging.Logger
}

// NewAnalyzer creates an engagement analyzer.
func NewAnalyzer(logger logging.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Rate computes (likes + comments) / views as a percentage, rounded to
// two decimals. A record with zero views has no defined rate and
// returns nil, not zero.
func (a *Analyzer) Rate(record models.VideoRecord) *float64 {
	if record.Views == 0 {
		return nil
	}
	rate := round2(float64(record.Likes+record.Comments) / float64(record.Views) * 100)
	return &rate
}

// Aggregate summarizes a set of records. Zero-view records count toward
// the totals but are excluded from the engagement-rate average. An
// empty set yields all zeros and no best performer.
func (a *Analyzer) Aggregate(records []models.VideoRecord) models.EngagementSummary {
	summary := models.EngagementSummary{TotalVideos: len(records)}
	if len(records) == 0 {
		return summary
	}

	var rateSum float64
	rated := 0
	best := -1
	for i := range records {
		summary.TotalViews += records[i].Views
		summary.TotalLikes += records[i].Likes
		summary.TotalComments += records[i].Comments
		if rate := a.Rate(records[i]); rate != nil {
			rateSum += *rate
			rated++
		}
		if best < 0 || records[i].Views > records[best].Views {
			best = i
		}
	}

	summary.AverageViews = float64(summary.TotalViews) / float64(len(records))
	if rated > 0 {
		summary.AverageEngagementRate = round2(rateSum / float64(rated))
	}
	if summary.TotalViews > 0 {
		summary.LikesPerView = float64(summary.TotalLikes) / float64(summary.TotalViews)
		summary.CommentsPerView = float64(summary.TotalComments) / float64(summary.TotalViews)
	}
	summary.BestPerforming = a.videoEngagement(records[best])
	return summary
}

// Schedule ranks posting slots: mean views grouped by weekday and by
// hour of day (UTC), top three of each. Records without a parseable
// timestamp are excluded from this view only.
func (a *Analyzer) Schedule(records []models.VideoRecord) models.UploadSchedule {
	daySums := make(map[string]int64)
	dayCounts := make(map[string]int)
	hourSums := make(map[string]int64)
	hourCounts := make(map[string]int)

	for i := range records {
		published, ok := records[i].PublishedTime()
		if !ok {
			continue
		}
		published = published.UTC()

		day := published.Weekday().String()
		daySums[day] += records[i].Views
		dayCounts[day]++

		hour := fmt.Sprintf("%02d:00", published.Hour())
		hourSums[hour] += records[i].Views
		hourCounts[hour]++
	}

	return models.UploadSchedule{
		TopDays:  topSlots(daySums, dayCounts),
		TopHours: topSlots(hourSums, hourCounts),
	}
}

// RollingTrend reports, for each calendar date with a rated record, the
// mean engagement rate over the trailing 30-day window ending on that
// date. Dates are ascending.
func (a *Analyzer) RollingTrend(records []models.VideoRecord) []models.DateValue {
	type ratedDay struct {
		day  time.Time
		rate float64
	}
	var rated []ratedDay
	for i := range records {
		published, ok := records[i].PublishedTime()
		if !ok {
			continue
		}
		rate := a.Rate(records[i])
		if rate == nil {
			continue
		}
		day := published.UTC().Truncate(24 * time.Hour)
		rated = append(rated, ratedDay{day: day, rate: *rate})
	}
	if len(rated) == 0 {
		return nil
	}

	days := make(map[time.Time]bool, len(rated))
	for _, r := range rated {
		days[r.day] = true
	}

	trend := make([]models.DateValue, 0, len(days))
	for day := range days {
		windowStart := day.AddDate(0, 0, -(rollingWindowDays - 1))
		var sum float64
		count := 0
		for _, r := range rated {
			if r.day.Before(windowStart) || r.day.After(day) {
				continue
			}
			sum += r.rate
			count++
		}
		trend = append(trend, models.DateValue{
			Date:  day.Format(trendDateFormat),
			Value: round2(sum / float64(count)),
		})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

// UploadFrequency normalizes the record count to videos per 30-day
// period over the caller's lookback window. A non-positive lookback
// yields zero.
func (a *Analyzer) UploadFrequency(records []models.VideoRecord, lookbackDays int) float64 {
	if lookbackDays <= 0 {
		return 0
	}
	return float64(len(records)) / float64(lookbackDays) * uploadPeriodDays
}

// TopVideos returns the highest-viewed records with their rates, at
// most five.
func (a *Analyzer) TopVideos(records []models.VideoRecord) []models.VideoEngagement {
	sorted := make([]models.VideoRecord, len(records))
	copy(sorted, records)
	// Views desc, then id so equal view counts rank stably.
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Views != sorted[j].Views {
			return sorted[i].Views > sorted[j].Views
		}
		return sorted[i].VideoID < sorted[j].VideoID
	})

	limit := topVideoCount
	if len(sorted) < limit {
		limit = len(sorted)
	}
	top := make([]models.VideoEngagement, 0, limit)
	for _, record := range sorted[:limit] {
		top = append(top, *a.videoEngagement(record))
	}
	return top
}

// Report runs the full channel analysis. Records below minViews are
// dropped before any computation; lookbackDays drives the upload
// frequency normalization.
func (a *Analyzer) Report(records []models.VideoRecord, lookbackDays int, minViews int64) models.ChannelReport {
	if minViews > 0 {
		filtered := make([]models.VideoRecord, 0, len(records))
		for i := range records {
			if records[i].Views >= minViews {
				filtered = append(filtered, records[i])
			}
		}
		records = filtered
	}

	perMonth := a.UploadFrequency(records, lookbackDays)
	report := models.ChannelReport{
		Summary:         a.Aggregate(records),
		TopVideos:       a.TopVideos(records),
		Schedule:        a.Schedule(records),
		EngagementTrend: a.RollingTrend(records),
		UploadsPerMonth: perMonth,
		UploadFrequency: fmt.Sprintf("%.1f videos per month", perMonth),
	}

	a.logger.WithFields(logging.Fields{
		"videos":       report.Summary.TotalVideos,
		"average_rate": report.Summary.AverageEngagementRate,
		"trend_days":   len(report.EngagementTrend),
	}).Debug("Analyzed channel engagement")

	return report
}

func (a *Analyzer) videoEngagement(record models.VideoRecord) *models.VideoEngagement {
	return &models.VideoEngagement{
		VideoID:        record.VideoID,
		Title:          record.Title,
		Views:          record.Views,
		EngagementRate: a.Rate(record),
	}
}

// topSlots ranks slots by mean views, descending, keeping the top
// three. Equal means rank alphabetically for stability.
func topSlots(sums map[string]int64, counts map[string]int) []models.ScheduleSlot {
	slots := make([]models.ScheduleSlot, 0, len(counts))
	for slot, count := range counts {
		slots = append(slots, models.ScheduleSlot{
			Slot:         slot,
			AverageViews: float64(sums[slot]) / float64(count),
			VideoCount:   count,
		})
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].AverageViews != slots[j].AverageViews {
			return slots[i].AverageViews > slots[j].AverageViews
		}
		return slots[i].Slot < slots[j].Slot
	})
	if len(slots) > topSlotCount {
		slots = slots[:topSlotCount]
	}
	return slots
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
