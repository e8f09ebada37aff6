package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/metrics"
)

// Pricer computes a quote for a selection against a catalog.
type Pricer interface {
	Quote(catalog *model.Catalog, req model.QuoteRequest) model.QuoteResult
}

// PricingOption configures a PricingService.
type PricingOption func(*PricingService)

// PricingService is the pricing engine. Quote is a pure function of its
// arguments; the service itself holds only configuration.
type PricingService struct {
	perTypePricing bool
}

// NewPricingService creates a PricingService with the given options.
func NewPricingService(opts ...PricingOption) *PricingService {
	s := &PricingService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithPerTypePricing prices a piece at the selected type's own price instead
// of the first catalog entry's. Selections that do not resolve to a type keep
// using the first entry.
func WithPerTypePricing() PricingOption {
	return func(s *PricingService) {
		s.perTypePricing = true
	}
}

// Quote prices the request. A missing or non-positive quantity yields the
// placeholder quote. Unknown or empty regions ship for free rather than
// failing; refusing delivery is the order validator's job.
func (s *PricingService) Quote(catalog *model.Catalog, req model.QuoteRequest) model.QuoteResult {
	start := time.Now()

	if req.Quantity <= 0 {
		metrics.RecordQuote(time.Since(start), metrics.QuotePlaceholder)
		return model.PlaceholderQuote()
	}

	quantity := decimal.NewFromInt(int64(req.Quantity))
	unit := s.unitPrice(catalog, req)
	before := unit.Mul(quantity)
	after := before.Mul(decimal.NewFromInt(1).Sub(catalog.DiscountRate()))

	freeShipping := req.Quantity >= catalog.FreeShippingThreshold()
	shipping := decimal.Zero
	if !freeShipping {
		if cost, ok := catalog.ShippingFor(strings.TrimSpace(req.Region)); ok {
			shipping = cost
		}
	}

	result := model.QuoteResult{
		UnitPriceBeforeDiscount:  unit,
		SubtotalBeforeDiscount:   before,
		SubtotalAfterDiscount:    after,
		ShippingCost:             shipping,
		Total:                    after.Add(shipping),
		SelectedItemsDescription: resolveSelection(catalog, req).summary(),
		FreeShipping:             freeShipping,
	}

	metrics.RecordQuote(time.Since(start), metrics.QuotePriced)
	return result
}

func (s *PricingService) unitPrice(catalog *model.Catalog, req model.QuoteRequest) decimal.Decimal {
	if s.perTypePricing {
		if pt, ok := catalog.FindType(strings.TrimSpace(req.SelectedTypeID)); ok {
			return pt.Price
		}
	}
	return catalog.FirstProductType().Price
}
