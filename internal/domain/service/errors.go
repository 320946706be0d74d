package service

import "storefront/internal/errors"

var (
	// ErrFileNotFound is returned by FileStorage.Open for unknown keys.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidToken is returned for malformed, forged or expired session tokens.
	ErrInvalidToken = errors.New("invalid session token")
)
