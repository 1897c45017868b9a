// Package httpserver runs an http.Handler with graceful shutdown and
// health-check probes.
//
// Run binds the listener, closes Ready, and serves until the context is
// cancelled, SIGINT or SIGTERM arrives, or Shutdown is called. Shutdown
// drains connections within the configured timeout, then runs the stop
// hooks registered with WithStopHook.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(context.Context) error { return rdb.Close() }),
//	)
//
//	r := chi.NewRouter()
//	r.Get("/health/live", httpserver.HealthCheckHandler(log))
//	r.Get("/health/ready", httpserver.HealthCheckHandler(log,
//		httpserver.Check{Name: "redis", Fn: redis.Healthcheck(rdb)},
//	))
//
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen and serve errors with ErrStart; Shutdown wraps drain and
// hook errors with ErrShutdown.
package httpserver
