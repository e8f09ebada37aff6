package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/flashe-service/internal/domain/dto"
	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/i18n"
	"github.com/guttosm/flashe-service/internal/service"
)

// AdminHandler serves catalog publishing and the journal.
type AdminHandler struct {
	store   *service.CatalogStore
	journal service.LoggingService
}

// NewAdminHandler creates an AdminHandler. journal may be nil when
// journaling is off.
func NewAdminHandler(store *service.CatalogStore, journal service.LoggingService) *AdminHandler {
	return &AdminHandler{store: store, journal: journal}
}

// PublishCatalog handles PUT /api/v1/admin/catalog.
//
// @Summary      Publish a catalog
// @Description  Stores the document as the active catalog snapshot and reloads the storefront catalog.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body dto.PublishCatalogRequest true "Catalog document"
// @Success      200 {object} dto.SuccessResponse{data=dto.CatalogView}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse "Document is not a valid catalog"
// @Failure      503 {object} dto.ErrorResponse "Snapshot storage unavailable"
// @Security     BasicAuth
// @Router       /api/v1/admin/catalog [put]
func (h *AdminHandler) PublishCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PublishCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	catalog, err := h.store.Publish(c.Request.Context(), req.Catalog, req.CreatedBy)
	switch {
	case errors.Is(err, model.ErrInvalidCatalog):
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyInvalidCatalog, err)
	case err != nil:
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	default:
		builder.SuccessOK(dto.NewCatalogView(catalog))
	}
}

// ReloadCatalog handles POST /api/v1/admin/catalog/reload.
//
// @Summary      Reload the catalog
// @Description  Resolves the catalog from its sources again.
// @Tags         Admin
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CatalogView}
// @Security     BasicAuth
// @Router       /api/v1/admin/catalog/reload [post]
func (h *AdminHandler) ReloadCatalog(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewCatalogView(h.store.Reload(c.Request.Context())))
}

// ListLogs handles GET /api/v1/admin/logs.
//
// @Summary      Query the journal
// @Tags         Admin
// @Produce      json
// @Param        action query string false "quote, order_prepared or order_rejected"
// @Param        region query string false "Region"
// @Param        request_id query string false "Request id"
// @Param        level query string false "info, warn or error"
// @Param        since query string false "RFC 3339 lower bound"
// @Param        limit query int false "Page size, at most 500"
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=[]model.LogEntry}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Security     BasicAuth
// @Router       /api/v1/admin/logs [get]
func (h *AdminHandler) ListLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.journal == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, nil)
		return
	}

	filter, err := logFilterFromQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	entries, err := h.journal.Find(c.Request.Context(), filter)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	}
	builder.SuccessOK(entries)
}

func logFilterFromQuery(c *gin.Context) (model.LogFilter, error) {
	filter := model.LogFilter{
		RequestID: c.Query("request_id"),
		Level:     c.Query("level"),
		Action:    c.Query("action"),
		Region:    c.Query("region"),
	}
	if raw := c.Query("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return model.LogFilter{}, err
		}
		filter.Since = &since
	}
	for key, dst := range map[string]*int{"limit": &filter.Limit, "skip": &filter.Skip} {
		if raw := c.Query(key); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return model.LogFilter{}, err
			}
			*dst = n
		}
	}
	return filter, nil
}
