package generate

import (
	"net/http"
	"strconv"
)

// Cost returns the rate limit cost of a request: its count or elements
// parameter when present and positive, otherwise 1. Use it with
// ratelimiter.WithCostFunc.
func Cost(r *http.Request) int {
	q := r.URL.Query()
	for _, name := range []string{"count", "elements"} {
		if n, err := strconv.Atoi(q.Get(name)); err == nil && n > 1 {
			return n
		}
	}
	return 1
}
