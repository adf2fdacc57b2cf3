package model

// ValidationError represents a field validation error on a domain entity.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrItemIDRequired is returned when a line item has no id.
	ErrItemIDRequired = &ValidationError{Field: "id", Message: "is required"}
	// ErrPriceNegative is returned when a line item has a negative unit price.
	ErrPriceNegative = &ValidationError{Field: "price", Message: "must not be negative"}
	// ErrPriceNotFinite is returned for NaN or infinite prices.
	ErrPriceNotFinite = &ValidationError{Field: "price", Message: "must be a finite number"}
	// ErrQuantityNotPositive is returned when quantity is below 1.
	ErrQuantityNotPositive = &ValidationError{Field: "quantity", Message: "must be a positive integer"}
	// ErrQuantityTooLarge is returned when a line would hold more than MaxQuantity units.
	ErrQuantityTooLarge = &ValidationError{Field: "quantity", Message: "must not exceed 999"}
)
