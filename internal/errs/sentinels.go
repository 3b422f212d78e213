// Package errs contains sentinel and typed errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/gateway/store layers.
var (
	// ErrNotFound indicates the requested entity does not exist or belongs to another user.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates failed authentication (bad credentials, invalid token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrAuthRequired is returned when an operation needs a signed-in principal and there is none.
	ErrAuthRequired = errors.New("user not authenticated")

	// ErrSessionChanged is returned when the principal changed while a request was in flight;
	// the result was discarded and the local cache left untouched.
	ErrSessionChanged = errors.New("session changed while request was in flight")
)
