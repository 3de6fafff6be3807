package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsMatchSentinels(t *testing.T) {
	assert.ErrorIs(t, NewNotFoundError("rate not found"), ErrNotFound)
	assert.ErrorIs(t, NewValidationError("bad input"), ErrValidation)
	assert.ErrorIs(t, NewConflictError("type exists"), ErrDuplicate)

	wrapped := fmt.Errorf("failed in service: %w", NewNotFoundError("missing"))
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.NotErrorIs(t, wrapped, ErrStorageUnavailable)
}

func TestStorageErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageError("failed to list exchange rates", cause)

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAppErrorDoesNotDoubleWrapSentinels(t *testing.T) {
	err := NewAppError(http.StatusInternalServerError, "lookup failed", ErrNotFound)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}
