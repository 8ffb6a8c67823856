package models

import "errors"

var (
	// ErrInvalidRange is returned when a range has min > max.
	ErrInvalidRange = errors.New("invalid range")

	// ErrMalformedResponse is returned when a server payload fails shape validation.
	ErrMalformedResponse = errors.New("malformed response")
)
