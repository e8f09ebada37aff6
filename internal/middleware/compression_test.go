//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	payload := strings.Repeat("فلاشة ", 200)
	router := gin.New()
	router.Use(Compression(), SecurityHeaders())
	router.GET("/api/v1/catalog", func(c *gin.Context) { c.String(http.StatusOK, payload) })
	router.GET("/metrics", func(c *gin.Context) { c.String(http.StatusOK, payload) })

	tests := []struct {
		name         string
		path         string
		acceptGzip   bool
		wantEncoding string
	}{
		{name: "gzip when accepted", path: "/api/v1/catalog", acceptGzip: true, wantEncoding: "gzip"},
		{name: "plain when not accepted", path: "/api/v1/catalog"},
		{name: "metrics excluded", path: "/metrics", acceptGzip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptGzip {
				req.Header.Set("Accept-Encoding", "gzip")
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantEncoding, w.Header().Get("Content-Encoding"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		})
	}
}
