package models

import (
	"errors"
	"fmt"
)

// ErrNotReady indicates the dataset has not finished loading and linking.
// No query may be served while this is the case.
var ErrNotReady = errors.New("dataset not loaded")

// InvalidParameterError indicates a caller-supplied argument violates a
// precondition. It never wraps a lower-level cause.
type InvalidParameterError struct {
	Message string
}

func (e *InvalidParameterError) Error() string { return e.Message }

// NewInvalidParameter returns an InvalidParameterError with the given message.
func NewInvalidParameter(message string) *InvalidParameterError {
	return &InvalidParameterError{Message: message}
}

// NotFoundError indicates a lookup key has no corresponding record, or a
// composed query produced an empty result where that is an error. It is a
// normal outcome of valid queries over sparse data, not a fault.
type NotFoundError struct {
	Resource string
	Lookup   string
	Key      string
	Message  string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("%s not found with %s: '%s'", e.Resource, e.Lookup, e.Key)
}

// NewNotFound returns a NotFoundError for a keyed lookup miss.
func NewNotFound(resource, lookup, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Lookup: lookup, Key: key}
}

// NewNotFoundMessage returns a NotFoundError carrying a free-form message,
// used for empty composed results.
func NewNotFoundMessage(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// ImportError indicates the load phase failed: a malformed source row,
// a missing source stream, or a numeric parse failure. The process must
// not serve queries in this state.
type ImportError struct {
	Message string
	Err     error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *ImportError) Unwrap() error { return e.Err }

// NewImportError wraps cause as an import failure.
func NewImportError(message string, cause error) *ImportError {
	return &ImportError{Message: message, Err: cause}
}
