package thinklie_errors

import "errors"

// Common errors
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrInvalidInput  = errors.New("invalid input")
	ErrTooLarge      = errors.New("file too large")
	ErrRateLimited   = errors.New("rate limited")
	ErrUpstream      = errors.New("upstream provider failure")
	ErrAlreadyExists = errors.New("already exists")
)
