package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "iri_exporter"

// Metrics is the set of collectors updated by the scrape handler.
type Metrics struct {
	// Scrapes counts inbound scrapes by HTTP status code.
	Scrapes *prometheus.CounterVec

	// UpstreamRequests counts IRI calls by command and outcome
	// (success | canceled | transport | decode | unknown).
	UpstreamRequests *prometheus.CounterVec

	// UpstreamDuration observes IRI call latency by command, including decoding.
	UpstreamDuration *prometheus.HistogramVec
}

// New creates the exporter's collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Scrapes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scrapes_total",
				Help:      "Total number of scrape requests by HTTP status code.",
			},
			[]string{"code"},
		),
		UpstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of IRI API calls by command and outcome.",
			},
			[]string{"command", "outcome"},
		),
		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "IRI API call latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"command"},
		),
	}
	reg.MustRegister(m.Scrapes, m.UpstreamRequests, m.UpstreamDuration)
	return m
}

// NewRegistry returns a registry with the Go runtime and process collectors
// already registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the contents of reg in the exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return mux
}
