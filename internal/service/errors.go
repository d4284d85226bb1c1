package service

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means the one-company-per-user rule would be violated.
	ErrConflict = errors.New("conflict")
	// ErrValidation means the input is missing or malformed.
	ErrValidation = errors.New("validation")
)
