// Package metrics holds the Prometheus collectors for the service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartcrop_predictions_total",
			Help: "Suitability checks by verdict",
		},
		[]string{"suitable"},
	)

	RankedCrops = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "smartcrop_ranked_crops",
			Help:    "Number of suitable crops returned per ranking",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 12, 20},
		},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartcrop_upstream_requests_total",
			Help: "Calls to external services by upstream and outcome",
		},
		[]string{"upstream", "outcome"},
	)

	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "smartcrop_circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	ReportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smartcrop_reports_total",
			Help: "Generated analysis workbooks",
		},
	)
)

func RecordPrediction(suitable bool, ranked int) {
	PredictionsTotal.WithLabelValues(strconv.FormatBool(suitable)).Inc()
	RankedCrops.Observe(float64(ranked))
}

// RecordUpstream counts one call; err == nil is "ok".
func RecordUpstream(upstream string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	UpstreamRequests.WithLabelValues(upstream, outcome).Inc()
}

func RecordBreakerState(name string, st gobreaker.State) {
	BreakerState.WithLabelValues(name).Set(float64(st))
}
