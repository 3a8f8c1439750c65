// Package metrics provides the Prometheus instruments for the wheel
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wheel"

// Metrics bundles every instrument the service records. Instruments are
// registered on the registry passed to New, so tests can use an isolated
// registry per case.
type Metrics struct {
	ItemsCreated  prometheus.Counter
	ItemsDeleted  prometheus.Counter
	ItemsCleared  prometheus.Counter
	SpinsRecorded prometheus.Counter

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers all instruments on reg and returns the bundle.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ItemsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_created_total",
			Help:      "Total number of wheel items created.",
		}),
		ItemsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_deleted_total",
			Help:      "Total number of wheel items deleted individually.",
		}),
		ItemsCleared: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_cleared_total",
			Help:      "Total number of clear-all operations.",
		}),
		SpinsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spins_recorded_total",
			Help:      "Total number of spin history records created.",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request duration in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		}, []string{"route", "method", "status"}),
	}
}
