package errs

import (
	"errors"
	"fmt"
)

// BackendError wraps a failed table call (network, constraint, not found, permission).
// Its message is the backend's message, unchanged.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string { return e.Err.Error() }
func (e *BackendError) Unwrap() error { return e.Err }

// UploadError wraps a failed object storage upload.
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string { return e.Err.Error() }
func (e *UploadError) Unwrap() error { return e.Err }

// ValidationError reports caller input that failed a local precondition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Reason) }

// Backend wraps err as a BackendError for op. Nil stays nil; an error that is
// already typed for the gateway boundary is returned as is.
func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) || errors.Is(err, ErrAuthRequired) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}

// Invalid builds a ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsBackend reports whether err carries a BackendError.
func IsBackend(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

// IsUpload reports whether err carries an UploadError.
func IsUpload(err error) bool {
	var ue *UploadError
	return errors.As(err, &ue)
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
