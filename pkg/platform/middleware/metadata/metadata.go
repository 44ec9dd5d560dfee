// Package metadata copies per-request client facts into the context so that
// services can log and key on them without touching the *http.Request.
package metadata

import (
	"net"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"portfolio/pkg/requestcontext"
)

// ClientMetadata records client IP, User-Agent, request ID and request time.
// Run it after chi's RealIP and RequestID.
func ClientMetadata(next http.Handler) http.Handler {
	return clientMetadata(time.Now)(next)
}

func clientMetadata(now func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithClientMetadata(r.Context(), ClientIPFromRequest(r), r.Header.Get("User-Agent"))
			if id := chimw.GetReqID(ctx); id != "" {
				ctx = requestcontext.WithRequestID(ctx, id)
			}
			ctx = requestcontext.WithTime(ctx, now())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIPFromRequest returns RemoteAddr without its port, or "unknown".
// Proxy headers are trusted only through chi's RealIP, which rewrites RemoteAddr.
func ClientIPFromRequest(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	if addr == "" {
		return "unknown"
	}
	return addr
}
