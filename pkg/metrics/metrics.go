package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks parse and lookup outcomes on a private registry.
type Metrics struct {
	registry       *prometheus.Registry
	ParseTotal     *prometheus.CounterVec
	LookupTotal    *prometheus.CounterVec
	LookupDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with its own registry, so several can
// coexist (one per App, one per test).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ParseTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "whois_parse_total",
			Help: "Registry responses parsed, by result (ok, fatal)",
		}, []string{"result"}),
		LookupTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "whois_lookup_total",
			Help: "Registry lookups, by fetcher and result (ok, error)",
		}, []string{"fetcher", "result"}),
		LookupDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "whois_lookup_duration_seconds",
			Help:    "Duration of registry fetches",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"fetcher"}),
	}
}

// ObserveParse records a parse outcome.
func (m *Metrics) ObserveParse(err error) {
	m.ParseTotal.WithLabelValues(resultLabel(err, "fatal")).Inc()
}

// ObserveLookup records a fetch outcome and its duration.
// Call with time.Now() at the start of the fetch.
func (m *Metrics) ObserveLookup(fetcher string, start time.Time, err error) {
	m.LookupTotal.WithLabelValues(fetcher, resultLabel(err, "error")).Inc()
	m.LookupDuration.WithLabelValues(fetcher).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func resultLabel(err error, failure string) string {
	if err != nil {
		return failure
	}
	return "ok"
}
