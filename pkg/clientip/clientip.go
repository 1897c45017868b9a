package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are consulted, in order, before RemoteAddr.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Resolver extracts the client address from a request. Only headers set by
// a trusted proxy should be listed; a zero Resolver uses RemoteAddr alone.
type Resolver struct {
	headers []string
}

// NewResolver returns a Resolver that trusts the given headers in order.
func NewResolver(headers ...string) Resolver {
	return Resolver{headers: headers}
}

// IP returns the normalized client IP or "" when none is valid.
// X-Forwarded-For contributes its first valid entry.
func (res Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// GetIP resolves the client IP trusting DefaultHeaders.
func GetIP(r *http.Request) string {
	return NewResolver(DefaultHeaders...).IP(r)
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
