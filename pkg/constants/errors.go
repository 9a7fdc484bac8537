package constants

import "errors"

// Errors
var (
	ErrConflictingMode    = errors.New("query already has an operation assigned")
	ErrNoRecords          = errors.New("insert requires at least one record")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidDestination = errors.New("destination must be a non-nil pointer")
)
