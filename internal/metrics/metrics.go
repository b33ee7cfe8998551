package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/monasquad/keepalive/internal/domain"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	ChecksTotal    *prometheus.CounterVec
	CheckDuration  prometheus.Histogram
	LastStatusCode prometheus.Gauge
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "health_checks_total",
			Help: "Total number of health checks, by outcome (success = any response received).",
		}, []string{"outcome"}),

		CheckDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "health_check_duration_seconds",
			Help:    "Time from sending the health check request to receiving response headers.",
			Buckets: prometheus.DefBuckets,
		}),

		LastStatusCode: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "health_check_last_status_code",
			Help: "HTTP status code of the most recent health check; 0 if it failed to get a response.",
		}),
	}

	reg.MustRegister(
		m.ChecksTotal,
		m.CheckDuration,
		m.LastStatusCode,
	)

	return m
}

// Observe records one tick's result.
func (m *Metrics) Observe(r domain.CheckResult) {
	m.ChecksTotal.WithLabelValues(r.Outcome()).Inc()
	m.LastStatusCode.Set(float64(r.StatusCode))
	if r.Succeeded() {
		m.CheckDuration.Observe(r.Duration.Seconds())
	}
}
