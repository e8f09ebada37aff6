// Package http exposes the storefront over a JSON API.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/flashe-service/internal/domain/dto"
	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/i18n"
	"github.com/guttosm/flashe-service/internal/middleware"
	"github.com/guttosm/flashe-service/internal/service"
)

// Handler serves the storefront routes.
type Handler struct {
	catalogs service.CatalogProvider
	pricer   service.Pricer
	orders   service.OrderSubmitter
	regions  *service.RegionSearch
	offer    *service.OfferClock
	recorder middleware.EntryRecorder
	now      func() time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithRecorder journals quotes and orders through r.
func WithRecorder(r middleware.EntryRecorder) HandlerOption {
	return func(h *Handler) {
		h.recorder = r
	}
}

// WithOfferClock sets the offer countdown clock.
func WithOfferClock(clock *service.OfferClock) HandlerOption {
	return func(h *Handler) {
		if clock != nil {
			h.offer = clock
		}
	}
}

// NewHandler creates a Handler.
func NewHandler(catalogs service.CatalogProvider, pricer service.Pricer, orders service.OrderSubmitter, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalogs: catalogs,
		pricer:   pricer,
		orders:   orders,
		regions:  service.NewRegionSearch(),
		offer:    service.NewOfferClock(time.Now().UTC(), service.DefaultOfferPeriod),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GetCatalog handles GET /api/v1/catalog.
//
// @Summary      Storefront catalog
// @Description  Product types, discount, shipping table and unavailable regions in effect.
// @Tags         Storefront
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CatalogView}
// @Failure      429 {object} dto.ErrorResponse
// @Router       /api/v1/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewCatalogView(h.catalogs.Current()))
}

// SearchRegions handles GET /api/v1/regions.
//
// @Summary      Search delivery regions
// @Description  Regions whose name contains the search term, in shipping table order. Spelling variants of hamza, ta marbuta and alif maqsura match each other.
// @Tags         Storefront
// @Produce      json
// @Param        q query string false "Search term"
// @Success      200 {object} dto.SuccessResponse{data=service.RegionSearchResult}
// @Router       /api/v1/regions [get]
func (h *Handler) SearchRegions(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.regions.Search(h.catalogs.Current(), c.Query("q")))
}

// Quote handles GET and POST /api/v1/quote.
//
// @Summary      Price the current selection
// @Description  Returns the price breakdown. A missing or unusable quantity yields the all-zero placeholder quote rather than an error.
// @Tags         Storefront
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest false "Selection (POST)"
// @Param        quantity query string false "Quantity (GET)"
// @Param        flash_type_id query string false "Product type id (GET)"
// @Param        custom_types query string false "Custom type list (GET)"
// @Param        region query string false "Delivery region (GET)"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteView}
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/v1/quote [get]
// @Router       /api/v1/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.QuoteRequest
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&req)
	} else {
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	qr := req.ToModel()
	quote := h.pricer.Quote(h.catalogs.Current(), qr)

	middleware.RecordActivity(h.recorder, c, middleware.Activity{
		Action:   model.ActionQuote,
		Message:  "Quote computed",
		Quantity: qr.Quantity,
		Region:   qr.Region,
		Fields:   map[string]any{"placeholder": quote.Placeholder},
	})

	builder.Success(http.StatusOK, dto.NewQuoteView(quote), i18n.SuccessKeyQuoteReady)
}

// SubmitOrder handles POST /api/v1/orders.
//
// @Summary      Prepare an order
// @Description  Validates the order form and returns the WhatsApp message and share link. Nothing is stored; the customer sends the message.
// @Tags         Storefront
// @Accept       json
// @Produce      json
// @Param        request body dto.OrderRequest true "Order form"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderView}
// @Failure      400 {object} dto.ErrorResponse "Malformed body"
// @Failure      422 {object} dto.ErrorResponse "A field failed validation; details.field names it"
// @Router       /api/v1/orders [post]
func (h *Handler) SubmitOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	form := req.ToForm().Normalized()
	activity := middleware.Activity{
		Quantity: model.ParseQuantity(form.Quantity),
		Region:   form.Region,
	}

	confirmation, err := h.orders.Submit(h.catalogs.Current(), form)
	if err != nil {
		var verr *service.ValidationError
		if !errors.As(err, &verr) {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
		activity.Action = model.ActionOrderRejected
		activity.Message = "Order rejected"
		activity.Err = err
		activity.Fields = map[string]any{"field": verr.Field}
		middleware.RecordActivity(h.recorder, c, activity)

		builder.ValidationFailed(verr)
		return
	}

	activity.Action = model.ActionOrderPrepared
	activity.Message = "Order prepared"
	middleware.RecordActivity(h.recorder, c, activity)

	builder.Success(http.StatusOK, dto.NewOrderView(confirmation), i18n.SuccessKeyOrderPrepared)
}

// GetOffer handles GET /api/v1/offer.
//
// @Summary      Offer countdown
// @Description  Time left in the current offer window. Windows repeat back to back.
// @Tags         Storefront
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.OfferCountdown}
// @Router       /api/v1/offer [get]
func (h *Handler) GetOffer(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.offer.Remaining(h.now()))
}

// NotFound answers unknown routes with the API error envelope.
func NotFound(c *gin.Context) {
	if !strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return
	}
	NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
}
