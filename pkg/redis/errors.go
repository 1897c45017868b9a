package redis

import "errors"

var (
	// ErrFailedToParseRedisConnString is returned when REDIS_URL is malformed.
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	// ErrRedisNotReady is returned when no ping succeeded within the retry budget.
	ErrRedisNotReady = errors.New("redis did not become ready within the given time period")
	// ErrEmptyConnectionURL is returned by Connect when no URL is configured.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")
	// ErrHealthcheckFailed wraps the ping error reported by Healthcheck.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
	// ErrStore wraps command errors returned by Store.
	ErrStore = errors.New("redis store operation failed")
)
