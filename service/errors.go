package services

import "errors"

var (
	// ErrInvalidLimit is returned when an aggregation limit is not positive.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrAPIRequired is returned when a service is built without a wines API.
	ErrAPIRequired = errors.New("wines API is required")
)
