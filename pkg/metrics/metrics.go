package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lipsum"

// Cache lookup results.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Metrics holds the service collectors on a private registry, so several
// instances can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	generations  *prometheus.CounterVec
	errors       *prometheus.CounterVec
	outputBytes  *prometheus.HistogramVec
	genDuration  *prometheus.HistogramVec
	cacheLookups *prometheus.CounterVec
	rateLimited  prometheus.Counter
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpInFlight prometheus.Gauge
}

// Option configures New.
type Option func(*options)

type options struct {
	runtime bool
}

// WithRuntimeCollectors adds the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(o *options) { o.runtime = true }
}

// New registers every collector on a fresh registry.
func New(opts ...Option) *Metrics {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	reg := prometheus.NewRegistry()
	if o.runtime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		generations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generated texts by operation and output format.",
		}, []string{"operation", "format"}),
		errors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_errors_total",
			Help:      "Rejected generation requests by operation.",
		}, []string{"operation"}),
		outputBytes: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "output_bytes",
			Help:      "Size of generated output.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		}, []string{"operation"}),
		genDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent composing output.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"operation"}),
		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Seeded result cache lookups by backend and result.",
		}, []string{"backend", "result"}),
		rateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"method", "route"}),
		httpInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),
	}
}

// Registry exposes the registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveGeneration records one successful generation.
func (m *Metrics) ObserveGeneration(operation, format string, size int, d time.Duration) {
	m.generations.WithLabelValues(operation, format).Inc()
	m.outputBytes.WithLabelValues(operation).Observe(float64(size))
	m.genDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveError records a rejected generation request.
func (m *Metrics) ObserveError(operation string) {
	m.errors.WithLabelValues(operation).Inc()
}

// ObserveCache records a result cache lookup.
func (m *Metrics) ObserveCache(backend string, hit bool) {
	result := CacheMiss
	if hit {
		result = CacheHit
	}
	m.cacheLookups.WithLabelValues(backend, result).Inc()
}

// ObserveRateLimited records a request refused by the rate limiter.
func (m *Metrics) ObserveRateLimited() {
	m.rateLimited.Inc()
}
