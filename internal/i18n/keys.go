package i18n

// Generic error keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyTimeout            = "error.timeout"
	// ErrKeyServiceUnavailable is used when quote history is disabled or its breaker is open.
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// Quote request validation keys, one per pricing sentinel error.
const (
	ErrKeyInvalidTier          = "error.validation.service_tier"
	ErrKeyInvalidRateType      = "error.validation.rate_type"
	ErrKeyInvalidDeliverySpeed = "error.validation.delivery_speed"
	ErrKeyInvalidQuantity      = "error.validation.quantity"
	ErrKeyInvalidLimit         = "error.validation.limit"

	ErrKeyQuoteNotFound = "error.quote_not_found"
)
