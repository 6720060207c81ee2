package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/startender/tender-api/internal/config"
	"github.com/startender/tender-api/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestRateLimiter_DisabledPassesEverything(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           false,
		RequestsPerMinute: 1,
	}, zap.NewNop())

	handler := rl.Limit(okHandler())
	for i := 0; i < 10; i++ {
		rr := doRequest(handler, "/api/tenders", "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRateLimiter_ExceedingLimitReturns429(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 3,
	}, zap.NewNop())

	handler := rl.Limit(okHandler())
	for i := 0; i < 3; i++ {
		rr := doRequest(handler, "/api/tenders", "10.0.0.2:1234")
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := doRequest(handler, "/api/tenders", "10.0.0.2:1234")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))
	assert.Contains(t, rr.Body.String(), "rate limit exceeded")
}

func TestRateLimiter_WhitelistedIPBypassesLimit(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 1,
		WhitelistIPs:      []string{"10.0.0.3"},
	}, zap.NewNop())

	handler := rl.Limit(okHandler())
	for i := 0; i < 5; i++ {
		rr := doRequest(handler, "/api/tenders", "10.0.0.3:1234")
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRateLimiter_WhitelistedPathBypassesLimit(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 1,
		WhitelistPaths:    []string{"/health"},
	}, zap.NewNop())

	handler := rl.Limit(okHandler())
	for i := 0; i < 5; i++ {
		rr := doRequest(handler, "/health", "10.0.0.4:1234")
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRateLimiter_WildcardPathPrefix(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 1,
		WhitelistPaths:    []string{"/uploads/*"},
	}, zap.NewNop())

	handler := rl.Limit(okHandler())
	for i := 0; i < 5; i++ {
		rr := doRequest(handler, "/uploads/bid/bid-123.pdf", "10.0.0.5:1234")
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRateLimiter_XForwardedForDeterminesClient(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 1,
		WhitelistIPs:      []string{"203.0.113.9"},
	}, zap.NewNop())

	handler := rl.Limit(okHandler())
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/tenders", nil)
		req.RemoteAddr = "10.0.0.6:1234"
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.6")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
