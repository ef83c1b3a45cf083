package utils

import "errors"

// Sentinel errors for the service layer. Services wrap these with %w so
// handlers can map them to HTTP status codes with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)
