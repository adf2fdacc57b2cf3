package i18n

// Error message keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeySessionRequired    = "error.session_required"
	ErrKeyInvalidItem        = "error.cart.invalid_item"
	ErrKeyInvalidQuantity    = "error.cart.invalid_quantity"
	ErrKeyEmptyCart          = "error.checkout.empty_cart"
	ErrKeyOrderFailed        = "error.checkout.order_failed"
	ErrKeyUnavailable        = "error.service_unavailable"
)

// Success message keys.
const (
	SuccessKeyLoggedOut = "success.session.logged_out"
)
