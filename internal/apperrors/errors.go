package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorageUnavailable indicates that the backing store (database or data file) could not
// be read or written. It is never retried.
var ErrStorageUnavailable = errors.New("storage unavailable")

// AppError carries an HTTP-ish code and a client-safe message next to the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the cause so errors.Is works against the sentinels above.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError. Codes >= 500 wrap ErrStorageUnavailable unless the
// cause already is one of the sentinels.
func NewAppError(code int, message string, err error) *AppError {
	if code >= http.StatusInternalServerError && !isSentinel(err) {
		err = &wrapped{sentinel: ErrStorageUnavailable, cause: err}
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an error matching ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewConflictError returns an error matching ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewStorageError wraps an I/O or connection failure so it matches ErrStorageUnavailable.
func NewStorageError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

func isSentinel(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrStorageUnavailable)
}

// wrapped lets a storage error match both ErrStorageUnavailable and its original cause.
type wrapped struct {
	sentinel error
	cause    error
}

func (w *wrapped) Error() string {
	if w.cause == nil {
		return w.sentinel.Error()
	}
	return w.sentinel.Error() + ": " + w.cause.Error()
}

func (w *wrapped) Unwrap() []error {
	if w.cause == nil {
		return []error{w.sentinel}
	}
	return []error{w.sentinel, w.cause}
}
