package service

import "errors"

var (
	// ErrInvalidCredentials is the single signal for a failed login. Unknown
	// handle and wrong password are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrMissingCredentials means no bearer token was presented at all.
	ErrMissingCredentials = errors.New("missing_credentials")

	// ErrUnknownSubject means a structurally valid token names a subject
	// that no longer exists in storage (e.g. a since-deleted account).
	ErrUnknownSubject = errors.New("unknown_subject")

	// ErrScopeViolation means a write referenced a category that is neither
	// global nor owned by the caller.
	ErrScopeViolation = errors.New("scope_violation")

	// ErrNotFound means a referenced entity id does not exist (or is not
	// visible to the caller, which must look the same externally).
	ErrNotFound = errors.New("not_found")

	// ErrInUse means a delete target is still referenced by other records,
	// e.g. a category with recorded expenses.
	ErrInUse = errors.New("in_use")

	// ErrValidation rejects malformed input before it reaches storage.
	ErrValidation = errors.New("invalid_input")
)
