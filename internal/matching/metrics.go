package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_compatibility_scores",
			Help:    "Distribution of overall compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	analysesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_analyses_total",
			Help: "Total number of compatibility analyses performed",
		},
	)

	matchesRanked = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_ranked_results",
			Help:    "Number of candidates surviving threshold and limit per ranking call",
			Buckets: prometheus.LinearBuckets(0, 2, 11),
		},
	)
)

func RecordCompatibilityScore(score float64) {
	compatibilityScores.Observe(score)
	analysesTotal.Inc()
}

func RecordMatchesRanked(count int) {
	matchesRanked.Observe(float64(count))
}
