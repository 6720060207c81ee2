package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrInvalidStatus is returned when a status value is outside its enum
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrInvalidRelatedKind is returned when a polymorphic reference names
	// an unknown entity kind
	ErrInvalidRelatedKind = errors.New("invalid related entity kind")

	// ErrInvalidDate is returned when a date string cannot be parsed
	ErrInvalidDate = errors.New("invalid date format")
)
