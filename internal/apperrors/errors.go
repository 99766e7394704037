package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoSession indicates that no stored session exists for an operation that
// requires one (missing bearer token outside the public auth endpoints).
var ErrNoSession = errors.New("authentication required")

// ErrSessionExpired indicates the backend rejected the stored token (401/403).
// The stored credentials are cleared before this is returned.
var ErrSessionExpired = errors.New("session expired")

// ErrBackend indicates the remote API reported a failure or returned an
// unusable response. The wrapped message carries the server text when present.
var ErrBackend = errors.New("backend error")
