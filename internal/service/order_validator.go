package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/i18n"
)

// Sentinel validation failures. A *ValidationError always wraps one of them.
var (
	ErrMissingField      = errors.New("required field missing")
	ErrInvalidQuantity   = errors.New("quantity must be a positive whole number")
	ErrRegionUnavailable = errors.New("delivery unavailable to region")
)

// Order form field names as they appear in API payloads and error details.
const (
	FieldName        = "name"
	FieldQuantity    = "quantity"
	FieldProductType = "flash_type_id"
	FieldPhone       = "phone"
	FieldRegion      = "region"
	FieldAddress     = "address"
)

const quantityTag = "quantity"

// ValidationError names the first field of an order form that failed.
type ValidationError struct {
	Field string
	// Key is the i18n message key for the failure.
	Key string
	// Region is set for unavailable-region failures.
	Region string
	err    error
}

func (e *ValidationError) Error() string {
	if e.Region != "" {
		return fmt.Sprintf("%s: %v: %s", e.Field, e.err, e.Region)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.err)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// Message returns the customer-facing text for the failure.
func (e *ValidationError) Message() string {
	t := i18n.GetTranslator()
	if e.Region != "" {
		return t.Translatef(e.Key, e.Region)
	}
	return t.Translate(e.Key)
}

// OrderValidator checks an order form before a message is built. Checks run
// in a fixed order and stop at the first failure.
type OrderValidator struct {
	validate *validator.Validate
}

// NewOrderValidator creates an OrderValidator with the quantity rule registered.
func NewOrderValidator() *OrderValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(quantityTag, func(fl validator.FieldLevel) bool {
		return model.ParseQuantity(fl.Field().String()) > 0
	})
	return &OrderValidator{validate: v}
}

// Validate returns nil or a *ValidationError. The form is expected to be
// normalized already.
func (ov *OrderValidator) Validate(catalog *model.Catalog, form model.OrderForm) error {
	failed := ov.failedFields(form)

	if failed["Name"] {
		return missing(FieldName, i18n.ValidationKeyNameRequired)
	}
	if failed["Quantity"] {
		err := ErrMissingField
		if form.Quantity != "" {
			err = ErrInvalidQuantity
		}
		return &ValidationError{Field: FieldQuantity, Key: i18n.ValidationKeyQuantityRequired, err: err}
	}

	quantity := model.ParseQuantity(form.Quantity)
	if quantity == 1 && form.SelectedTypeID == "" {
		return missing(FieldProductType, i18n.ValidationKeyTypeRequiredSingle)
	}
	if quantity > 1 && form.SelectedTypeID == "" && form.CustomTypesText == "" {
		return missing(FieldProductType, i18n.ValidationKeyTypeRequiredMultiple)
	}

	if failed["Phone"] {
		return missing(FieldPhone, i18n.ValidationKeyPhoneRequired)
	}
	if failed["Region"] {
		return missing(FieldRegion, i18n.ValidationKeyRegionRequired)
	}
	if catalog.IsUnavailable(form.Region) {
		return &ValidationError{
			Field:  FieldRegion,
			Key:    i18n.ValidationKeyRegionUnavailable,
			Region: form.Region,
			err:    ErrRegionUnavailable,
		}
	}
	if failed["Address"] {
		return missing(FieldAddress, i18n.ValidationKeyAddressRequired)
	}
	return nil
}

func (ov *OrderValidator) failedFields(form model.OrderForm) map[string]bool {
	failed := make(map[string]bool)
	var verrs validator.ValidationErrors
	if err := ov.validate.Struct(form); errors.As(err, &verrs) {
		for _, fe := range verrs {
			failed[fe.StructField()] = true
		}
	}
	return failed
}

func missing(field, key string) *ValidationError {
	return &ValidationError{Field: field, Key: key, err: ErrMissingField}
}
