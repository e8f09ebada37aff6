//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticCatalog struct {
	catalog *model.Catalog
}

func (s staticCatalog) Current() *model.Catalog {
	return s.catalog
}

type captureRecorder struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (r *captureRecorder) Log(entry *model.LogEntry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return true
}

func (r *captureRecorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.entries {
		if e.Action != "" {
			out = append(out, e.Action)
		}
	}
	return out
}

func newTestHandler(recorder *captureRecorder) *Handler {
	pricer := service.NewPricingService()
	orders := service.NewOrderService(pricer, service.NewOrderValidator())
	return NewHandler(staticCatalog{catalog: model.DefaultCatalog()}, pricer, orders, WithRecorder(recorder))
}

func newTestRouter(handler *Handler, admin *AdminHandler, cfg RouterConfig) *gin.Engine {
	return NewRouter(handler, admin, NewHealthHandler(staticCatalog{catalog: model.DefaultCatalog()}), cfg)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// envelope decodes the response body into a generic map.
func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := envelope(t, w)["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}
