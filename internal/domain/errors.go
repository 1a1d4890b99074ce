package domain

import "errors"

var (
	// ErrInvalidArgument is returned before any mutation when an input is out of range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned by the service layer when a named recipe does not exist.
	ErrNotFound = errors.New("not found")
)
