package main

import (
	"frameworks/api_insights/internal/engagement"
	"frameworks/api_insights/internal/handlers"
	"frameworks/api_insights/internal/keywords"
	"frameworks/api_insights/internal/metrics"
	"frameworks/api_insights/internal/nlp"
	"frameworks/api_insights/internal/sentiment"
	"frameworks/api_insights/internal/seo"
	"frameworks/api_insights/internal/trends"
	"frameworks/api_insights/pkg/config"
	"frameworks/api_insights/pkg/logging"
	"frameworks/api_insights/pkg/monitoring"
	"frameworks/api_insights/pkg/server"
	"frameworks/api_insights/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("spyglass")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting Spyglass (Content Analytics Scoring API)")

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("spyglass", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("spyglass", version.Version, version.GitCommit)

	// The engine is pure and in-process; health reduces to the embedded
	// language data parsing cleanly.
	healthChecker.AddCheck("lexicon", monitoring.ComponentHealthCheck("lexicon", func() error {
		_, err := nlp.LoadLexicon()
		return err
	}))
	healthChecker.AddCheck("stopwords", monitoring.ComponentHealthCheck("stopwords", func() error {
		_, err := nlp.LoadStopwords()
		return err
	}))

	// Create custom analysis metrics
	analyses, duration, items := metricsCollector.CreateAnalysisMetrics()
	serviceMetrics := &metrics.Metrics{
		Analyses:         analyses,
		AnalysisDuration: duration,
		ItemsProcessed:   items,
	}

	// Wire the engine
	sentimentAnalyzer, err := sentiment.NewAnalyzer(logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize sentiment analyzer")
	}
	keywordExtractor, err := keywords.NewExtractor(logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize keyword extractor")
	}
	analyzers := handlers.Analyzers{
		Trends:     trends.NewAnalyzer(logger),
		Content:    seo.NewScorer(logger),
		Sentiment:  sentimentAnalyzer,
		Engagement: engagement.NewAnalyzer(logger),
		Keywords:   keywordExtractor,
	}

	// Setup router with unified monitoring and the analysis routes
	router := server.SetupServiceRouter(logger, "spyglass", healthChecker, metricsCollector)
	handler := handlers.NewAnalysisHandler(analyzers, logger, serviceMetrics)
	handler.RegisterRoutes(router)

	// Start HTTP server with graceful shutdown
	serverConfig := server.DefaultConfig("spyglass", "18010")
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server startup failed")
	}
}
