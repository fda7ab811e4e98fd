// Package trends turns raw interest-over-time series into direction,
// momentum and forecast signals.
package trends

import (
	"context"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"frameworks/api_insights/pkg/logging"
	"frameworks/api_insights/pkg/models"
)

const (
	// StableCorrelationThreshold is the |r| below which a series is
	// reported as having no meaningful direction.
	StableCorrelationThreshold = 0.3

	// ForecastHorizon is the number of future steps projected from the
	// fitted line.
	ForecastHorizon = 30
)

// Direction labels reported in TrendAnalysis.
const (
	DirectionIncreasing = "increasing"
	DirectionDecreasing = "decreasing"
	DirectionStable     = "stable"
)

// Analyzer computes trend signals for interest series.
type Analyzer struct {
	logger logging.Logger
}

// NewAnalyzer creates a trend analyzer.
func NewAnalyzer(logger logging.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze computes the signal summary for one series. Degenerate series
// produce sentinel values: an empty series is all zeros and stable, a
// zero mean yields zero volatility, a zero first value yields zero
// momentum.
func (a *Analyzer) Analyze(series models.InterestSeries) models.TrendAnalysis {
	values := series.Values
	result := models.TrendAnalysis{
		Keyword:     series.Keyword,
		SampleCount: len(values),
		Direction:   DirectionStable,
	}
	if len(values) == 0 {
		return result
	}

	result.Mean = stat.Mean(values, nil)
	// Population deviation, not sample: every cadence step is observed.
	result.StdDev = stat.PopStdDev(values, nil)
	result.Median = median(values)
	result.Min, result.Max = minMax(values)

	if result.Mean != 0 {
		result.Volatility = result.StdDev / result.Mean
	}

	if len(values) >= 2 {
		first, last := values[0], values[len(values)-1]
		if first != 0 {
			result.Momentum = (last - first) / first * 100
		}

		index := make([]float64, len(values))
		for i := range index {
			index[i] = float64(i)
		}
		intercept, slope := stat.LinearRegression(index, values, nil, false)

		// Correlation is NaN for a constant series; that counts as no
		// direction.
		r := stat.Correlation(index, values, nil)
		if !math.IsNaN(r) && math.Abs(r) >= StableCorrelationThreshold {
			if slope > 0 {
				result.Direction = DirectionIncreasing
			} else if slope < 0 {
				result.Direction = DirectionDecreasing
			}
		}

		// The fit continues on the index axis, unclamped.
		forecast := make([]float64, ForecastHorizon)
		for step := 0; step < ForecastHorizon; step++ {
			x := float64(len(values) + step)
			forecast[step] = intercept + slope*x
		}
		result.Forecast = forecast
	}

	a.logger.WithFields(logging.Fields{
		"keyword":   series.Keyword,
		"samples":   result.SampleCount,
		"direction": result.Direction,
		"momentum":  result.Momentum,
	}).Debug("Analyzed trend series")

	return result
}

// AnalyzeBatch analyzes each series concurrently. Results keep the
// input order. The batch size is unbounded here; transport-level caps
// are the caller's concern.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, series []models.InterestSeries) ([]models.TrendAnalysis, error) {
	results := make([]models.TrendAnalysis, len(series))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range series {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = a.Analyze(series[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// median averages the middle pair for even-length input.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func minMax(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
