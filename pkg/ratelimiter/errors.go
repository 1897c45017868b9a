package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates that the bucket configuration is invalid.
	ErrInvalidConfig = errors.New("ratelimiter: invalid configuration")

	// ErrInvalidTokenCount indicates a non-positive token request.
	ErrInvalidTokenCount = errors.New("ratelimiter: invalid token count")

	// ErrContextCancelled is returned when the context is done before the check.
	ErrContextCancelled = errors.New("ratelimiter: context cancelled")
)
