package cache

import (
	"context"
	"time"
)

// Memory stores generated text in process memory, keyed by request
// fingerprint. It is safe for concurrent use.
type Memory struct {
	lru *LRU[string, string]
}

// NewMemory returns a store holding at most size results, each kept for
// ttl (zero keeps them until evicted).
func NewMemory(size int, ttl time.Duration) *Memory {
	return &Memory{lru: NewLRU(size, WithTTL[string, string](ttl))}
}

// Get returns the cached result for key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.lru.Get(key)
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.lru.Put(key, value)
	return nil
}

// Len returns the number of cached results.
func (m *Memory) Len() int {
	return m.lru.Len()
}
