//go:build !integration

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/flashe-service/internal/domain/dto"
	"github.com/guttosm/flashe-service/internal/middleware"
)

func TestNewRouter_Routes(t *testing.T) {
	router := newTestRouter(newTestHandler(&captureRecorder{}), nil, DefaultRouterConfig())

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /healthz",
		"GET /readyz",
		"GET /metrics",
		"GET /swagger/*any",
		"GET /api/v1/catalog",
		"GET /api/v1/regions",
		"GET /api/v1/quote",
		"POST /api/v1/quote",
		"POST /api/v1/orders",
		"GET /api/v1/offer",
	} {
		assert.True(t, registered[route], route)
	}
	assert.False(t, registered["PUT /api/v1/admin/catalog"])
}

func TestNewRouter_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	defer limiter.Stop()
	cfg := DefaultRouterConfig()
	cfg.RateLimiter = limiter
	router := newTestRouter(newTestHandler(&captureRecorder{}), nil, cfg)

	for i := 0; i < 2; i++ {
		w := doJSON(t, router, http.MethodGet, "/api/v1/catalog", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, dto.ErrCodeRateLimit, envelope(t, w)["error"])
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Probes are not limited.
	assert.Equal(t, http.StatusOK, doJSON(t, router, http.MethodGet, "/healthz", nil).Code)
}

func TestNewRouter_CORS(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.CORSOrigins = []string{"https://flashe.example"}
	router := newTestRouter(newTestHandler(&captureRecorder{}), nil, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/quote", nil)
	req.Header.Set("Origin", "https://flashe.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://flashe.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_SwaggerBasicAuth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.SwaggerUser = "docs"
	cfg.SwaggerPass = "pass"
	router := newTestRouter(nil, nil, cfg)

	w := doJSON(t, router, http.MethodGet, "/swagger/index.html", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.SetBasicAuth("docs", "pass")
	authorized := httptest.NewRecorder()
	router.ServeHTTP(authorized, req)
	assert.Equal(t, http.StatusOK, authorized.Code)
}

func TestNewRouter_SecurityHeaders(t *testing.T) {
	router := newTestRouter(newTestHandler(&captureRecorder{}), nil, DefaultRouterConfig())

	w := doJSON(t, router, http.MethodGet, "/api/v1/offer", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
