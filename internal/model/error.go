package model

// Standard error codes surfaced to API clients.
const (
	ErrCodeOutOfStock        = "OUT_OF_STOCK"
	ErrCodeCouponNotFound    = "COUPON_NOT_FOUND"
	ErrCodeCouponInactive    = "COUPON_INACTIVE"
	ErrCodeCouponExpired     = "COUPON_EXPIRED"
	ErrCodeMinimumNotMet     = "MINIMUM_NOT_MET"
	ErrCodeLookupNotFound    = "LOOKUP_NOT_FOUND"
	ErrCodeLookupFailed      = "LOOKUP_FAILED"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeStockNotFound     = "STOCK_NOT_FOUND"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInvalidTransition = "INVALID_STATUS_TRANSITION"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is an expected business failure returned as a value, never
// raised as a panic. The message is the human-readable reason shown to
// the user.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrOutOfStock              = NewDomainError(ErrCodeOutOfStock, "Product unavailable in stock")
	ErrCouponNotFound          = NewDomainError(ErrCodeCouponNotFound, "Coupon not found")
	ErrCouponInactive          = NewDomainError(ErrCodeCouponInactive, "Coupon is inactive")
	ErrCouponExpired           = NewDomainError(ErrCodeCouponExpired, "Coupon has expired")
	ErrMinimumNotMet           = NewDomainError(ErrCodeMinimumNotMet, "Order subtotal is below the coupon minimum")
	ErrLookupNotFound          = NewDomainError(ErrCodeLookupNotFound, "Postal code not found")
	ErrLookupFailed            = NewDomainError(ErrCodeLookupFailed, "Postal code lookup failed")
	ErrProductNotFound         = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound           = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrStockNotFound           = NewDomainError(ErrCodeStockNotFound, "No stock entry for this product variation")
	ErrInvalidQuantity         = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidStatusTransition = NewDomainError(ErrCodeInvalidTransition, "Order status transition not allowed")
)

// NewValidationError reports a missing or malformed required field.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
