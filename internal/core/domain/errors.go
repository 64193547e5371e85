package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrServiceUnavailable indicates the narrative provider could not be reached
	ErrServiceUnavailable = errors.New("service unavailable")
)
