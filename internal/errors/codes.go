package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidTag    ErrorCode = "VALIDATION_005"
	ValidationBatchTooLarge ErrorCode = "VALIDATION_006"
)

// Statement error codes (STATEMENT_*)
const (
	StatementNotFound      ErrorCode = "STATEMENT_001"
	StatementInvalidID     ErrorCode = "STATEMENT_002"
	StatementAlreadyStored ErrorCode = "STATEMENT_003"
	StatementStoreFailed   ErrorCode = "STATEMENT_004"
	StatementStoreDisabled ErrorCode = "STATEMENT_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRequestCanceled    ErrorCode = "SYSTEM_007"
	SystemRouteNotFound      ErrorCode = "SYSTEM_008"
	SystemPayloadTooLarge    ErrorCode = "SYSTEM_009"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidTag:    "Category tag is not one of the allowed values",
	ValidationBatchTooLarge: "Batch contains too many statements",

	StatementNotFound:      "Statement not found",
	StatementInvalidID:     "Invalid statement ID format",
	StatementAlreadyStored: "A statement with this upload ID has already been stored",
	StatementStoreFailed:   "Statement was transformed but could not be stored",
	StatementStoreDisabled: "Statement storage is not configured",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRequestCanceled:    "Request was canceled before it completed",
	SystemRouteNotFound:      "Resource not found",
	SystemPayloadTooLarge:    "Request body is too large",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
