// Package redis connects to Redis and exposes it as a shared result store.
//
// Connect parses a redis:// URL and pings with retries; Healthcheck turns
// a client into a readiness probe; Store implements the same Get/Set
// method set as the in-memory cache.Memory, with keys namespaced by a
// prefix and expired after a TTL.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		store := redis.NewStoreFromConfig(client, cfg)
//		_ = store
//	}
//
// Errors are sentinels joined with the go-redis error, so both errors.Is
// checks work.
package redis
