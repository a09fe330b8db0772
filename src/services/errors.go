package services

import "errors"

// Sentinel errors for explicit error handling. Callers distinguish failure
// modes with errors.Is() instead of string matching; the HTTP layer maps
// them onto status codes (401, 403, 404, 409).

var (
	// ErrInvalidCredentials indicates authentication failed. Bad username,
	// bad password, and inactive account are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken indicates a malformed, forged, or expired session token.
	// The three cases are deliberately indistinguishable to the caller.
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden indicates a valid identity with insufficient rights
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates a duplicate username or email
	ErrConflict = errors.New("username or email already exists")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a request failed input validation
	ErrValidation = errors.New("validation failed")
)
