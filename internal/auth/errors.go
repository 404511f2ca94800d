package auth

import "errors"

var (
	// ErrInvalidToken covers malformed, mis-signed and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)
