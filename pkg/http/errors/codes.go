package errors

// Error codes for standardized error responses
const (
	// Request shape errors
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeMissingField   = "missing_field"

	// Resource errors
	ErrCodeNotFound         = "not_found"
	ErrCodeCategoryNotFound = "category_not_found"
	ErrCodeQuestionNotFound = "question_not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Business logic errors
	ErrCodeUnprocessable = "unprocessable"
	ErrCodeCreateFailed  = "create_failed"
	ErrCodeDeleteFailed  = "delete_failed"

	// Throttling
	ErrCodeRateLimited = "rate_limited"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)
