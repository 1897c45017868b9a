// Package metrics exposes Prometheus collectors for the lipsum service.
//
// A Metrics value owns a private registry with generation counters, output
// size and latency histograms, cache lookup counters and HTTP request
// metrics. Mount Handler at /metrics and wrap the router with Middleware.
//
//	m := metrics.New(metrics.WithRuntimeCollectors())
//	r := chi.NewRouter()
//	r.Use(m.Middleware)
//	r.Handle("/metrics", m.Handler())
package metrics
