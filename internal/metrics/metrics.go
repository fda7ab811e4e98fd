package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds all Prometheus metrics for the Spyglass analysis service
type Metrics struct {
	Analyses         *prometheus.CounterVec   // analyzer, status
	AnalysisDuration *prometheus.HistogramVec // analyzer
	ItemsProcessed   *prometheus.CounterVec   // analyzer, outcome
}
