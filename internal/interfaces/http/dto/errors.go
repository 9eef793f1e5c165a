package dto

import (
	"net/http"
	"strings"
)

// Error codes surfaced by the API. Domain errors keep their original codes
// so CLI and HTTP clients see the same vocabulary; the ERR_* codes cover
// transport-level failures that never reach the domain layer.

// Transport error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeValidation is used when request binding fails
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeRequestTooLarge is used when the request body exceeds the limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// Domain error codes
const (
	// ErrCodeNotFound is used when a bracelet is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when creating a duplicate bracelet
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeStorageFailure is used when the backing store fails
	ErrCodeStorageFailure = "STORAGE_FAILURE"
)

// validationCodePrefix marks the family of field validation codes
// (INVALID_ID, INVALID_QUANTITY, ...) produced by the domain layer.
const validationCodePrefix = "INVALID_"

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// Transport errors
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// Domain errors
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeAlreadyExists:  http.StatusConflict,
	ErrCodeStorageFailure: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Validation codes map to 400 Bad Request; anything unknown maps to
// 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, validationCodePrefix) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
