// Package metrics exposes Prometheus instrumentation for the analysis
// request path and the ingestion worker pool.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"net/http"
)

var (
	AnalysisRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_requests_total",
		Help: "Total number of AnalyzeFlightPrices calls, by outcome.",
	}, []string{"outcome"})

	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Duration of AnalyzeFlightPrices calls.",
		Buckets: prometheus.DefBuckets,
	})

	ForecastTrainings = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "forecast_trainings_total",
		Help: "Total number of forecaster training runs, by outcome.",
	}, []string{"outcome"})

	ForecastRMSE = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "forecast_model_rmse",
		Help: "Cross-validated RMSE of the most recently trained model, by route.",
	}, []string{"route"})

	IngestionJobsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingestion_jobs_processed_total",
		Help: "Total number of ingestion jobs processed, by queue and outcome.",
	}, []string{"queue", "outcome"})

	IngestionJobDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ingestion_job_duration_seconds",
		Help:    "Duration of ingestion job processing, by queue.",
		Buckets: prometheus.DefBuckets,
	}, []string{"queue"})

	WorkersActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ingestion_workers_active",
		Help: "Number of active ingestion worker goroutines.",
	})
)

func init() {
	prometheus.MustRegister(
		AnalysisRequests,
		AnalysisDuration,
		ForecastTrainings,
		ForecastRMSE,
		IngestionJobsProcessed,
		IngestionJobDuration,
		WorkersActive,
	)
}

// Handler returns the HTTP handler serving Prometheus's text exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
