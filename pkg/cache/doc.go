// Package cache provides an in-memory result store for generated text.
//
// LRU is a generic, thread-safe least-recently-used cache with optional
// expiry, hit/miss counters and an eviction callback. Memory adapts it to
// the context-aware string store used by the HTTP module, so seeded
// requests, whose output is deterministic, are generated once and then
// served from memory:
//
//	store := cache.NewMemory(1024, 10*time.Minute)
//	if out, ok, _ := store.Get(ctx, key); ok {
//		return out
//	}
//
// The Redis-backed store with the same method set lives in pkg/redis.
package cache
