package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowEnforcesBurst(t *testing.T) {
	l := New(2)

	assert.True(t, l.Allow("client-a"))
	assert.True(t, l.Allow("client-a"))
	assert.False(t, l.Allow("client-a"))

	// Other clients have their own bucket.
	assert.True(t, l.Allow("client-b"))
}

func TestClientID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	r.Header.Set("User-Agent", strings.Repeat("x", 80))

	id := ClientID(r)
	assert.True(t, strings.HasPrefix(id, "203.0.113.7-"))
	assert.LessOrEqual(t, len(id), len("203.0.113.7-")+50)

	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	bare.Header.Set("User-Agent", "curl/8.0")
	assert.Contains(t, ClientID(bare), "curl/8.0")
}

func TestMiddlewareRejectsWith429(t *testing.T) {
	l := New(1)
	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.8")
	req.Header.Set("User-Agent", "test-agent")

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "Too many requests")
}
