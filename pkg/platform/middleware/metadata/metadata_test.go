package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"portfolio/pkg/requestcontext"
)

func TestClientMetadata(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var (
		ip, ua, reqID string
		now           time.Time
	)
	h := chimw.RequestID(clientMetadata(func() time.Time { return fixed })(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip = requestcontext.ClientIP(ctx)
			ua = requestcontext.UserAgent(ctx)
			reqID = requestcontext.RequestID(ctx)
			now = requestcontext.Now(ctx)
		})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.4:5555"
	req.Header.Set("User-Agent", "test-agent")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "198.51.100.4", ip)
	assert.Equal(t, "test-agent", ua)
	assert.NotEmpty(t, reqID)
	assert.Equal(t, fixed, now)
}

func TestClientIPFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", ClientIPFromRequest(r))

	r.RemoteAddr = "198.51.100.2"
	assert.Equal(t, "198.51.100.2", ClientIPFromRequest(r))

	r.RemoteAddr = ""
	assert.Equal(t, "unknown", ClientIPFromRequest(r))
}
