// Package clientip resolves the address of the client behind a request and
// carries it in the request context, mainly so log records can include it.
//
// Proxy headers are only honoured when listed with WithTrustedHeaders; by
// default the connection's RemoteAddr is used.
package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Common proxy headers in the order they are usually trusted.
const (
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderXRealIP        = "X-Real-IP"
)

type resolver struct {
	headers []string
}

type Option func(*resolver)

// WithTrustedHeaders sets the proxy headers consulted before RemoteAddr, in
// priority order. For X-Forwarded-For the first valid address wins.
func WithTrustedHeaders(headers ...string) Option {
	return func(r *resolver) {
		r.headers = headers
	}
}

// Resolve returns the client IP of r, or "" when none can be parsed.
func Resolve(r *http.Request, opts ...Option) string {
	res := &resolver{}
	for _, opt := range opts {
		opt(res)
	}
	return res.resolve(r)
}

func (res *resolver) resolve(r *http.Request) string {
	for _, h := range res.headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := normalize(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the resolved client IP in the request context.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	res := &resolver{}
	for _, opt := range opts {
		opt(res)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.resolve(r))))
		})
	}
}

// LoggerExtractor returns a pkg/logger context extractor for the client IP.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
