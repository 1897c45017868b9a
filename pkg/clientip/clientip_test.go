package clientip_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lipsum/pkg/clientip"
	"github.com/dmitrymomot/lipsum/pkg/logger"
)

func TestResolverIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    []string
		reqHeaders map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "203.0.113.7:51234",
			want:       "203.0.113.7",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "untrusted header ignored",
			reqHeaders: map[string]string{"X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "203.0.113.7:1",
			want:       "203.0.113.7",
		},
		{
			name:       "first valid forwarded entry",
			headers:    []string{"X-Forwarded-For"},
			reqHeaders: map[string]string{"X-Forwarded-For": "garbage, 198.51.100.1, 10.0.0.1"},
			remoteAddr: "203.0.113.7:1",
			want:       "198.51.100.1",
		},
		{
			name:       "header order respected",
			headers:    []string{"CF-Connecting-IP", "X-Real-IP"},
			reqHeaders: map[string]string{"X-Real-IP": "10.0.0.2", "CF-Connecting-IP": "10.0.0.1"},
			remoteAddr: "203.0.113.7:1",
			want:       "10.0.0.1",
		},
		{
			name:       "ipv4 mapped address unmapped",
			headers:    []string{"X-Real-IP"},
			reqHeaders: map[string]string{"X-Real-IP": "::ffff:192.0.2.1"},
			want:       "192.0.2.1",
		},
		{
			name:       "invalid everything",
			headers:    []string{"X-Real-IP"},
			reqHeaders: map[string]string{"X-Real-IP": "not-an-ip"},
			remoteAddr: "nope",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.reqHeaders {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.NewResolver(tt.headers...).IP(req))
		})
	}
}

func TestGetIPUsesDefaultHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "192.0.2.44")
	assert.Equal(t, "192.0.2.44", clientip.GetIP(req))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(clientip.Resolver{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.GetIPFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.9:8080"
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "192.0.2.9", got)
	assert.Empty(t, clientip.GetIPFromContext(context.Background()))
}

func TestLogExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithContextExtractors(clientip.LogExtractor()),
	)

	ctx := clientip.SetIPToContext(context.Background(), "192.0.2.10")
	log.InfoContext(ctx, "hello")
	assert.Contains(t, buf.String(), `"client_ip":"192.0.2.10"`)

	buf.Reset()
	log.Log(context.Background(), slog.LevelInfo, "bare")
	assert.NotContains(t, buf.String(), "client_ip")
}
