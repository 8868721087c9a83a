package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	routingDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contactrouter",
		Subsystem: "routing",
		Name:      "decisions_total",
		Help:      "Routing decisions by vertical and resolved level or route type.",
	}, []string{"vertical", "outcome"})

	datasetLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contactrouter",
		Subsystem: "store",
		Name:      "loads_total",
		Help:      "Reference dataset load attempts by dataset and result.",
	}, []string{"dataset", "result"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "contactrouter",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern and status code.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"route", "status"})
)

// RoutingDecision counts one resolved routing request.
func RoutingDecision(vertical, outcome string) {
	routingDecisions.WithLabelValues(vertical, outcome).Inc()
}

// DatasetLoad counts one load attempt; err == nil counts as success.
func DatasetLoad(dataset string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	datasetLoads.WithLabelValues(dataset, result).Inc()
}

// ObserveRequest records the duration of one request in seconds.
func ObserveRequest(route, status string, seconds float64) {
	requestDuration.WithLabelValues(route, status).Observe(seconds)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
