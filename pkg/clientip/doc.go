// Package clientip resolves the originating client address of an HTTP
// request.
//
// A Resolver walks a list of trusted proxy headers and falls back to
// RemoteAddr. List only headers that the proxy in front of the service
// overwrites; clients can set any header themselves.
//
//	res := clientip.NewResolver("X-Forwarded-For")
//	r.Use(clientip.Middleware(res))
//
//	ip := clientip.GetIPFromContext(r.Context())
//
// LogExtractor plugs the address into pkg/logger as the client_ip attribute.
// The rate limiter keys per-client buckets on the same value.
package clientip
