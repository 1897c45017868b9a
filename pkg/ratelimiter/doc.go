// Package ratelimiter implements token bucket rate limiting with an
// in-memory store and HTTP middleware.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Refused requests consume nothing.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       100,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	res, err := limiter.AllowN(ctx, "198.51.100.1", 5)
//	if err == nil && !res.Allowed() {
//		wait := res.RetryAfter()
//	}
//
// # HTTP Middleware
//
// Middleware keys buckets by client IP unless WithKeyFunc says otherwise.
// WithCostFunc charges expensive requests more than one token:
//
//	r.Use(ratelimiter.Middleware(limiter,
//		ratelimiter.WithCostFunc(func(r *http.Request) int {
//			n, _ := strconv.Atoi(r.URL.Query().Get("count"))
//			return n
//		}),
//	))
//
// Responses carry X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset. Rejected requests get 429 with Retry-After in seconds.
//
// Config carries env tags so binaries can load it with pkg/config.
package ratelimiter
