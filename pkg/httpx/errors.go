package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// API error codes. Fixed minimal strings so responses never leak internal
// state; only persistence failures get operator-side diagnostic logging.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeUnauthenticated    = "unauthenticated"
	ErrorCodeScopeViolation     = "scope_violation"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeConflict           = "conflict"
	ErrorCodeServerError        = "server_error"
)

// APIError is the wire shape of every failed request. It implements the
// error interface and is used by handlers to write uniform responses.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when the request is missing a required
	// parameter, includes an invalid value, or is otherwise malformed.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is the single external signal for a failed login.
	// Unknown handle and wrong password produce this identical response so
	// handles cannot be enumerated.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid credentials",
	}

	// ErrUnauthenticated covers missing, malformed, expired, or unverifiable
	// tokens, and tokens whose subject no longer exists.
	ErrUnauthenticated = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthenticated,
		Description: "authentication required",
	}

	// ErrScopeViolation is returned when a write references a category that
	// is neither global nor owned by the caller.
	ErrScopeViolation = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeScopeViolation,
		Description: "category is not visible to this account",
	}

	// ErrNotFound is returned when a referenced entity id does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrConflict is returned when a unique constraint rejects a write,
	// e.g. signing up with a handle that is already taken.
	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "resource already exists",
	}

	// ErrResourceInUse is returned when a delete target is still referenced
	// by other records.
	ErrResourceInUse = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "resource is still referenced by other records",
	}

	// ErrServerError is the generic persistence/internal failure response.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)
