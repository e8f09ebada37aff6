package i18n

// Error message keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyServiceUnavailable = "error.service_unavailable"
	ErrKeyInvalidCatalog     = "error.invalid_catalog"
)

// Order form validation keys, one per rule in the order the form is checked.
const (
	ValidationKeyNameRequired         = "validation.name_required"
	ValidationKeyQuantityRequired     = "validation.quantity_required"
	ValidationKeyTypeRequiredSingle   = "validation.type_required_single"
	ValidationKeyTypeRequiredMultiple = "validation.type_required_multiple"
	ValidationKeyPhoneRequired        = "validation.phone_required"
	ValidationKeyRegionRequired       = "validation.region_required"
	// ValidationKeyRegionUnavailable takes the region name as its only argument.
	ValidationKeyRegionUnavailable = "validation.region_unavailable"
	ValidationKeyAddressRequired   = "validation.address_required"
)

// Success message keys.
const (
	SuccessKeyQuoteReady    = "success.quote_ready"
	SuccessKeyOrderPrepared = "success.order_prepared"
)
