package dto

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates a malformed request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeValidation indicates an order form field failed validation.
	ErrCodeValidation = "validation_failed"
	// ErrCodeRegionUnavailable indicates delivery to the region is not offered.
	ErrCodeRegionUnavailable = "region_unavailable"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency is down.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data any `json:"data" swaggertype:"object"`
	// Message is a customer-facing confirmation, when there is one.
	Message   string    `json:"message,omitempty" example:"تم حساب التكلفة."`
	RequestID string    `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_failed"`
	Message string `json:"message,omitempty" example:"رقم الهاتف مطلوب."`
	// Details carries the failing field for validation errors.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetail adds one detail entry.
func (e ErrorResponse) WithDetail(key, value string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// CatalogView is the catalog as served to the storefront.
//
// @Description Product and shipping configuration in effect
type CatalogView struct {
	ProductTypes          []model.ProductType `json:"product_types"`
	Discount              decimal.Decimal     `json:"discount" swaggertype:"string" example:"0.25"`
	DiscountPercent       int64               `json:"discount_percent" example:"25"`
	ContactNumber         string              `json:"contact_number" example:"201117635075"`
	Regions               []model.RegionRate  `json:"regions"`
	FreeShippingThreshold int                 `json:"free_shipping_threshold" example:"2"`
	UnavailableRegions    []string            `json:"unavailable_regions"`
	Source                string              `json:"source" example:"file"`
} // @name CatalogView

// NewCatalogView renders c for the API.
func NewCatalogView(c *model.Catalog) CatalogView {
	return CatalogView{
		ProductTypes:          c.ProductTypes(),
		Discount:              c.DiscountRate(),
		DiscountPercent:       c.DiscountRate().Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		ContactNumber:         c.ContactNumber(),
		Regions:               c.Regions(),
		FreeShippingThreshold: c.FreeShippingThreshold(),
		UnavailableRegions:    c.UnavailableRegions(),
		Source:                c.Source(),
	}
}

// QuoteView is a quote together with its display strings.
//
// @Description Quote with amounts formatted for display
type QuoteView struct {
	model.QuoteResult
	Display QuoteDisplay `json:"display"`
} // @name QuoteView

// QuoteDisplay holds the formatted amounts shown in the price box.
type QuoteDisplay struct {
	UnitPrice              string `json:"unit_price" example:"515.00 ج.م"`
	SubtotalBeforeDiscount string `json:"subtotal_before_discount" example:"515.00 ج.م"`
	SubtotalAfterDiscount  string `json:"subtotal_after_discount" example:"386.25 ج.م"`
	ShippingCost           string `json:"shipping_cost" example:"70.00 ج.م"`
	Total                  string `json:"total" example:"456.25 ج.م"`
}

// NewQuoteView renders q with display strings.
func NewQuoteView(q model.QuoteResult) QuoteView {
	return QuoteView{
		QuoteResult: q,
		Display: QuoteDisplay{
			UnitPrice:              model.FormatAmount(q.UnitPriceBeforeDiscount),
			SubtotalBeforeDiscount: model.FormatAmount(q.SubtotalBeforeDiscount),
			SubtotalAfterDiscount:  model.FormatAmount(q.SubtotalAfterDiscount),
			ShippingCost:           model.FormatAmount(q.ShippingCost),
			Total:                  model.FormatAmount(q.Total),
		},
	}
}

// OrderView is a prepared order.
//
// @Description Prepared order with its WhatsApp message and link
type OrderView struct {
	Description string    `json:"description"`
	Message     string    `json:"message"`
	ShareLink   string    `json:"share_link" example:"https://wa.me/201117635075?text=..."`
	Quote       QuoteView `json:"quote"`
} // @name OrderView

// NewOrderView renders a confirmation.
func NewOrderView(c *model.OrderConfirmation) OrderView {
	return OrderView{
		Description: c.Description,
		Message:     c.Message,
		ShareLink:   c.ShareLink,
		Quote:       NewQuoteView(c.Quote),
	}
}
