// Command lipsumd serves the lipsum generation API over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/lipsum"
	"github.com/dmitrymomot/lipsum/modules/generate"
	"github.com/dmitrymomot/lipsum/pkg/clientip"
	"github.com/dmitrymomot/lipsum/pkg/config"
	"github.com/dmitrymomot/lipsum/pkg/httpserver"
	"github.com/dmitrymomot/lipsum/pkg/logger"
	"github.com/dmitrymomot/lipsum/pkg/metrics"
	"github.com/dmitrymomot/lipsum/pkg/ratelimiter"
	"github.com/dmitrymomot/lipsum/pkg/redis"
	"github.com/dmitrymomot/lipsum/pkg/requestid"
)

type appConfig struct {
	// Seed makes unseeded requests reproducible across restarts. Zero
	// means a random seed.
	Seed             uint64   `env:"LIPSUM_SEED"`
	RateLimit        bool     `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`
	RuntimeMetrics   bool     `env:"METRICS_RUNTIME" envDefault:"true"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "lipsumd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg   appConfig
		logCfg   logger.Config
		httpCfg  httpserver.Config
		genCfg   generate.Config
		limitCfg ratelimiter.Config
		redisCfg redis.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&logCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&genCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&redisCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log := logger.NewFromConfig(logCfg, os.Stdout,
		logger.WithContextExtractors(requestid.LogExtractor(), clientip.LogExtractor()),
	)
	logger.SetAsDefault(log)

	var genOpts []lipsum.GeneratorOption
	if appCfg.Seed != 0 {
		genOpts = append(genOpts, lipsum.WithSeed(appCfg.Seed))
	}
	gen, err := lipsum.New(genOpts...)
	if err != nil {
		return err
	}

	var metricOpts []metrics.Option
	if appCfg.RuntimeMetrics {
		metricOpts = append(metricOpts, metrics.WithRuntimeCollectors())
	}
	m := metrics.New(metricOpts...)

	svcOpts := []generate.Option{
		generate.WithGenerator(gen),
		generate.WithMetrics(m),
		generate.WithLogger(log.With(logger.Component("generate"))),
	}
	checks := []httpserver.Check{{Name: "generator", Fn: func(context.Context) error {
		_, err := gen.Roll(lipsum.MustRange(1, 1))
		return err
	}}}
	var stopHooks []httpserver.Option
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		svcOpts = append(svcOpts, generate.WithCache(redis.NewStoreFromConfig(client, redisCfg), "redis"))
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
		stopHooks = append(stopHooks, httpserver.WithStopHook(func(context.Context) error { return client.Close() }))
		log.InfoContext(ctx, "redis result cache enabled")
	}

	var limiter ratelimiter.Limiter
	if appCfg.RateLimit {
		store := ratelimiter.NewMemoryStore()
		stopHooks = append(stopHooks, httpserver.WithStopHook(func(context.Context) error { store.Close(); return nil }))
		if limiter, err = ratelimiter.NewBucket(store, limitCfg); err != nil {
			return err
		}
	}

	router := newRouter(routerDeps{
		log:       log,
		service:   generate.NewService(genCfg, svcOpts...),
		metrics:   m,
		limiter:   limiter,
		resolver:  clientip.NewResolver(appCfg.TrustedIPHeaders...),
		readiness: checks,
	})

	srv := httpserver.NewFromConfig(httpCfg, append(stopHooks, httpserver.WithLogger(log))...)
	log.InfoContext(ctx, "starting lipsumd", slog.String("version", lipsum.EngineVersion()))
	return srv.Run(ctx, router)
}

type routerDeps struct {
	log       *slog.Logger
	service   *generate.Service
	metrics   *metrics.Metrics
	limiter   ratelimiter.Limiter
	resolver  clientip.Resolver
	readiness []httpserver.Check
}

// newRouter wires probes, /metrics and the generation API. Only the API is
// rate limited; a nil limiter disables limiting.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(d.resolver),
		d.metrics.Middleware,
	)

	r.Get("/health/live", httpserver.HealthCheckHandler(d.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(d.log, d.readiness...))
	r.Method(http.MethodGet, "/metrics", d.metrics.Handler())

	var limits []func(http.Handler) http.Handler
	if d.limiter != nil {
		limits = append(limits, ratelimiter.Middleware(d.limiter,
			ratelimiter.WithCostFunc(generate.Cost),
			ratelimiter.WithDeniedHook(func(req *http.Request, _ *ratelimiter.Result) {
				d.metrics.ObserveRateLimited()
				d.log.InfoContext(req.Context(), "rate limited", slog.String("path", req.URL.Path))
			}),
		))
	}
	r.With(limits...).Mount("/", d.service.Handle())

	return r
}
