package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeInvalidParameter = "INVALID_PARAMETER"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidShareLink = "INVALID_SHARE_LINK"
	ErrCodeNoItemsFound     = "NO_ITEMS_FOUND"
	ErrCodeTooManyItems     = "TOO_MANY_ITEMS"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidShareLink = NewDomainError(ErrCodeInvalidShareLink, "Share link could not be decoded")
	ErrNoItemsFound     = NewDomainError(ErrCodeNoItemsFound, "No products in the share link exist in the catalogue")
	ErrTooManyItems     = NewDomainError(ErrCodeTooManyItems, "Too many products in comparison")
)
