package ratelimiter

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/lipsum/pkg/clientip"
)

// maxKeyLength bounds storage keys; longer composite keys are hashed.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request. An empty key skips
// limiting for that request.
type KeyFunc func(r *http.Request) string

// CostFunc returns how many tokens a request consumes.
type CostFunc func(r *http.Request) int

// ByIP keys buckets on the client IP. It prefers the address stored by
// clientip.Middleware and falls back to RemoteAddr.
func ByIP(r *http.Request) string {
	if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.Resolver{}.IP(r)
}

// Composite joins the non-empty keys of several key functions.
// Keys longer than maxKeyLength are hashed with FNV-1a.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}
		h := fnv.New64a()
		h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	key      KeyFunc
	cost     CostFunc
	onDenied func(r *http.Request, res *Result)
}

// WithKeyFunc replaces the default ByIP key.
func WithKeyFunc(fn KeyFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.key = fn
		}
	}
}

// WithCostFunc charges requests more than one token. Non-positive costs
// count as one.
func WithCostFunc(fn CostFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.cost = fn
		}
	}
}

// WithDeniedHook is called for every rejected request.
func WithDeniedHook(fn func(r *http.Request, res *Result)) MiddlewareOption {
	return func(c *middlewareConfig) { c.onDenied = fn }
}

// Middleware rejects requests with 429 once their bucket is empty and sets
// X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset on every
// limited response.
func Middleware(limiter Limiter, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		key:  ByIP,
		cost: func(*http.Request) int { return 1 },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := cfg.key(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.AllowN(r.Context(), key, max(cfg.cost(r), 1))
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				// Round up so clients never retry a fraction of a second early.
				retryAfter := int((result.RetryAfter() + time.Second - 1) / time.Second)
				w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
				if cfg.onDenied != nil {
					cfg.onDenied(r, result)
				}
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
