package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps generated text in Redis so replicas of the server share
// deterministic results. Keys are namespaced with a prefix and expire
// after ttl.
type Store struct {
	db     redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewStore wraps client. A zero ttl stores keys without expiry.
func NewStore(client redis.UniversalClient, prefix string, ttl time.Duration) *Store {
	return &Store{db: client, prefix: prefix, ttl: ttl}
}

// NewStoreFromConfig is NewStore with the prefix and ttl taken from cfg.
func NewStoreFromConfig(client redis.UniversalClient, cfg Config) *Store {
	return NewStore(client, cfg.KeyPrefix, cfg.TTL)
}

// Get returns the value stored under key. A missing key is not an error.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.db.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(ErrStore, err)
	}
	return val, true, nil
}

// Set stores value under key with the store's ttl.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.db.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}
