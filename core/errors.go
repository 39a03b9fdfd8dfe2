package core

import "github.com/pkg/errors"

var (
	// ErrConnection is returned when a storage handle cannot be obtained or
	// the storage backend is unreachable.
	ErrConnection = errors.New("storage connection failed")

	// ErrAuthenticationFailed is returned on unknown identity or secret mismatch.
	// It deliberately does not say which.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// IsConnectionErr checks err and its cause chain for ErrConnection.
func IsConnectionErr(err error) bool {
	return errors.Cause(err) == ErrConnection
}

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
