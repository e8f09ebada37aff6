package service

import (
	"errors"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/metrics"
)

// OrderSubmitter turns a filled-in order form into a ready-to-send message.
type OrderSubmitter interface {
	Submit(catalog *model.Catalog, form model.OrderForm) (*model.OrderConfirmation, error)
}

// OrderService validates an order and composes its message and share link.
// Nothing is stored; the customer sends the message themselves.
type OrderService struct {
	pricer    Pricer
	validator *OrderValidator
}

// NewOrderService creates an OrderService.
func NewOrderService(pricer Pricer, validator *OrderValidator) *OrderService {
	if validator == nil {
		validator = NewOrderValidator()
	}
	return &OrderService{pricer: pricer, validator: validator}
}

// Submit validates form and, when it passes, returns the description,
// message, share link and quote. A failed validation produces nothing but
// the *ValidationError.
func (s *OrderService) Submit(catalog *model.Catalog, form model.OrderForm) (*model.OrderConfirmation, error) {
	form = form.Normalized()

	if err := s.validator.Validate(catalog, form); err != nil {
		if errors.Is(err, ErrRegionUnavailable) {
			metrics.RecordOrder(metrics.OrderRegionUnavailable)
		} else {
			metrics.RecordOrder(metrics.OrderValidationFailed)
		}
		return nil, err
	}

	req := form.QuoteRequest()
	quote := s.pricer.Quote(catalog, req)
	description := FormatOrderDescription(catalog, req)
	message := FormatWhatsAppMessage(form.Customer(), description, quote.Total)

	metrics.RecordOrder(metrics.OrderPrepared)
	return &model.OrderConfirmation{
		Description: description,
		Message:     message,
		ShareLink:   BuildShareLink(catalog.ContactNumber(), message),
		Quote:       quote,
	}, nil
}
