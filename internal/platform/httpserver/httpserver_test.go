package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	srv := New(":0", http.NotFoundHandler())
	assert.Equal(t, ":0", srv.Addr)
	assert.Equal(t, 45*time.Second, srv.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, srv.ReadHeaderTimeout)

	srv = New(":0", http.NotFoundHandler(), WithWriteTimeout(90*time.Second), WithWriteTimeout(0))
	assert.Equal(t, 90*time.Second, srv.WriteTimeout)
}
