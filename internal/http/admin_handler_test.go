//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/flashe-service/internal/domain/dto"
	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/mocks"
	"github.com/guttosm/flashe-service/internal/repository"
	"github.com/guttosm/flashe-service/internal/service"
)

const adminPath = "/api/v1/admin"

func adminConfig() RouterConfig {
	cfg := DefaultRouterConfig()
	cfg.AdminUser = "admin"
	cfg.AdminPass = "secret"
	return cfg
}

func newAdminRouter(store *service.CatalogStore, journal service.LoggingService) http.Handler {
	return newTestRouter(newTestHandler(&captureRecorder{}), NewAdminHandler(store, journal), adminConfig())
}

func publishableDocument() model.CatalogDocument {
	doc := model.DefaultCatalogDocument()
	doc.Discount = 0.1
	return doc
}

func doAdminResponse(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("admin", "secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doAdmin(t *testing.T, router http.Handler, method, path string, body any) int {
	t.Helper()
	return doAdminResponse(t, router, method, path, body).Code
}

func TestAdminRoutes_RequireCredentials(t *testing.T) {
	router := newAdminRouter(service.NewCatalogStore(service.NewCatalogLoader()), nil)

	w := doJSON(t, router, http.MethodPost, adminPath+"/catalog/reload", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutes_NotRegisteredWithoutCredentials(t *testing.T) {
	store := service.NewCatalogStore(service.NewCatalogLoader())
	router := newTestRouter(newTestHandler(&captureRecorder{}), NewAdminHandler(store, nil), DefaultRouterConfig())

	w := doJSON(t, router, http.MethodPost, adminPath+"/catalog/reload", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminHandler_PublishCatalog(t *testing.T) {
	doc := publishableDocument()

	t.Run("publishes and reloads", func(t *testing.T) {
		repo := new(mocks.MockCatalogRepository)
		snapshot := repository.SnapshotFromDocument(doc)
		snapshot.Version = 3
		repo.On("Publish", mock.Anything, mock.Anything, "ops").Return(&snapshot, nil)
		repo.On("GetActive", mock.Anything).Return(&snapshot, nil)
		loader := service.NewCatalogLoader(service.WithSources(service.NewMongoCatalogSource(repo)), service.WithUnifiedPrice(0))
		store := service.NewCatalogStore(loader, service.WithSnapshotRepository(repo))
		router := newAdminRouter(store, nil)

		w := doAdminResponse(t, router, http.MethodPut, adminPath+"/catalog",
			dto.PublishCatalogRequest{Catalog: doc, CreatedBy: "ops"})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := dataOf(t, w)
		assert.Equal(t, service.SourceMongo, data["source"])
		assert.EqualValues(t, 10, data["discount_percent"])
		assert.Equal(t, service.SourceMongo, store.Current().Source())
		repo.AssertExpectations(t)
	})

	t.Run("invalid document", func(t *testing.T) {
		repo := new(mocks.MockCatalogRepository)
		store := service.NewCatalogStore(service.NewCatalogLoader(), service.WithSnapshotRepository(repo))
		router := newAdminRouter(store, nil)

		w := doAdminResponse(t, router, http.MethodPut, adminPath+"/catalog",
			dto.PublishCatalogRequest{Catalog: model.CatalogDocument{}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, envelope(t, w)["error"])
		repo.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publishing disabled", func(t *testing.T) {
		router := newAdminRouter(service.NewCatalogStore(service.NewCatalogLoader()), nil)

		code := doAdmin(t, router, http.MethodPut, adminPath+"/catalog", dto.PublishCatalogRequest{Catalog: doc})

		assert.Equal(t, http.StatusServiceUnavailable, code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router := newAdminRouter(service.NewCatalogStore(service.NewCatalogLoader()), nil)

		code := doAdmin(t, router, http.MethodPut, adminPath+"/catalog", `{"catalog":`)

		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestAdminHandler_ReloadCatalog(t *testing.T) {
	repo := new(mocks.MockCatalogRepository)
	snapshot := repository.SnapshotFromDocument(publishableDocument())
	repo.On("GetActive", mock.Anything).Return(&snapshot, nil)
	loader := service.NewCatalogLoader(service.WithSources(service.NewMongoCatalogSource(repo)))
	store := service.NewCatalogStore(loader)
	router := newAdminRouter(store, nil)

	w := doAdminResponse(t, router, http.MethodPost, adminPath+"/catalog/reload", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.SourceMongo, dataOf(t, w)["source"])
}

func TestAdminHandler_ListLogs(t *testing.T) {
	since := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("passes filters through", func(t *testing.T) {
		repo := new(mocks.MockLogsRepository)
		repo.On("Find", mock.Anything, mock.MatchedBy(func(f model.LogFilter) bool {
			return f.Action == model.ActionOrderPrepared &&
				f.Region == "القاهرة" &&
				f.Limit == service.MaxLogLimit &&
				f.Skip == 10 &&
				f.Since != nil && f.Since.Equal(since)
		})).Return([]model.LogEntry{{Action: model.ActionOrderPrepared, Quantity: 2}}, nil)
		router := newAdminRouter(service.NewCatalogStore(service.NewCatalogLoader()), service.NewLoggingService(repo))

		path := adminPath + "/logs?action=order_prepared&region=%D8%A7%D9%84%D9%82%D8%A7%D9%87%D8%B1%D8%A9&limit=9999&skip=10&since=2026-10-01T00:00:00Z"
		w := doAdminResponse(t, router, http.MethodGet, path, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		entries := envelope(t, w)["data"].([]any)
		require.Len(t, entries, 1)
		assert.EqualValues(t, 2, entries[0].(map[string]any)["quantity"])
		repo.AssertExpectations(t)
	})

	t.Run("bad since", func(t *testing.T) {
		router := newAdminRouter(service.NewCatalogStore(service.NewCatalogLoader()), service.NewLoggingService(new(mocks.MockLogsRepository)))

		assert.Equal(t, http.StatusBadRequest, doAdmin(t, router, http.MethodGet, adminPath+"/logs?since=yesterday", nil))
	})

	t.Run("bad limit", func(t *testing.T) {
		router := newAdminRouter(service.NewCatalogStore(service.NewCatalogLoader()), service.NewLoggingService(new(mocks.MockLogsRepository)))

		assert.Equal(t, http.StatusBadRequest, doAdmin(t, router, http.MethodGet, adminPath+"/logs?limit=ten", nil))
	})

	t.Run("journal unavailable", func(t *testing.T) {
		repo := new(mocks.MockLogsRepository)
		repo.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("no primary"))
		router := newAdminRouter(service.NewCatalogStore(service.NewCatalogLoader()), service.NewLoggingService(repo))

		assert.Equal(t, http.StatusServiceUnavailable, doAdmin(t, router, http.MethodGet, adminPath+"/logs", nil))
	})

	t.Run("journaling off", func(t *testing.T) {
		router := newAdminRouter(service.NewCatalogStore(service.NewCatalogLoader()), nil)

		assert.Equal(t, http.StatusServiceUnavailable, doAdmin(t, router, http.MethodGet, adminPath+"/logs", nil))
	})
}
