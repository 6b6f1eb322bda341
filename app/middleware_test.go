package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiterIsPerIP(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5678"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2:1234"))
	assert.Equal(t, http.StatusNoContent, call("no-port"))
}

func TestIPRateLimiterPrunesIdleEntries(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i <= cleanupThreshold; i++ {
		limiter.GetLimiter(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	assert.Equal(t, cleanupThreshold+1, limiter.size())

	now = now.Add(maxIdleAge + time.Minute)
	limiter.GetLimiter("192.168.0.1")
	assert.Equal(t, 1, limiter.size())
}
