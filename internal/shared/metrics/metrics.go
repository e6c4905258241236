package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_analyses_total",
			Help: "Total ATS analyses by outcome",
		},
		[]string{"outcome"},
	)

	OverallScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ats_overall_score",
			Help:    "Distribution of overall ATS scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ats_analysis_duration_seconds",
			Help:    "Time spent resolving, scoring and recording an analysis",
			Buckets: prometheus.DefBuckets,
		},
	)

	HistoryWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ats_history_write_failures_total",
			Help: "Analysis history writes that failed and were discarded",
		},
	)
)

// ObserveAnalysis records the outcome of one analysis request.
func ObserveAnalysis(outcome string, overall int, seconds float64) {
	AnalysesTotal.WithLabelValues(outcome).Inc()
	AnalysisDuration.Observe(seconds)
	if outcome == OutcomeSuccess {
		OverallScore.Observe(float64(overall))
	}
}

// IncHistoryWriteFailure counts a discarded history write.
func IncHistoryWriteFailure() {
	HistoryWriteFailures.Inc()
}

// Handler exposes the default registry in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
