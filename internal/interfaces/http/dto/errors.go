package dto

import "net/http"

// Error codes used by the API surface. Domain errors carry their own
// codes; these cover errors raised at the HTTP layer itself.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain and API error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	// Identity
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,

	// Resources
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Input
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_CATEGORY":     http.StatusBadRequest,
	"INVALID_PARENT":       http.StatusBadRequest,
	"INVALID_PAYMENT":      http.StatusBadRequest,
	"INVALID_QUANTITY":     http.StatusBadRequest,
	"INVALID_ADDRESS":      http.StatusBadRequest,
	"INVALID_ORDER_ID":     http.StatusBadRequest,
	"INVALID_RATING":       http.StatusBadRequest,
	"UNSUPPORTED_LANGUAGE": http.StatusBadRequest,

	// Business rules
	"INVALID_STATE":      http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK": http.StatusUnprocessableEntity,
	"DEFAULT_CATEGORY":   http.StatusBadRequest,

	// Translation
	"TRANSLATION_FORMAT":  http.StatusUnprocessableEntity,
	"TRANSLATION_SERVICE": http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
