package ratelimiter

import (
	"context"
	"time"
)

// Store holds bucket state.
type Store interface {
	// ConsumeTokens refills the bucket for key, then takes tokens if enough
	// are available. It returns what would remain after the take; a negative
	// value means the take was refused and nothing was consumed.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the state for key.
	Reset(ctx context.Context, key string) error
}
