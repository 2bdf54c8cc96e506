package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cardvalidator"

// Metrics holds the counters exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry
	checks   *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		checks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Card numbers that passed the format gate, by network and checksum result",
		}, []string{"network", "result"}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Requests rejected before the checksum, by reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) ObserveCheck(network string, valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.checks.WithLabelValues(network, result).Inc()
}

func (m *Metrics) ObserveRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
