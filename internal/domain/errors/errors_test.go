package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsLeavesCatalogUntouched(t *testing.T) {
	derived := ErrPasswordStrength.WithDetails("не короче 8 символов")

	assert.ErrorIs(t, derived, ErrPasswordStrength)
	assert.NotErrorIs(t, derived, ErrPasswordForbiddenWords)
	assert.Equal(t, "не короче 8 символов", derived.Details())
	assert.Empty(t, ErrPasswordStrength.Details())
}

func TestBaseError_WithCause(t *testing.T) {
	cause := stderrors.New("duplicate key")
	err := ErrUserCreationFailed.WithCause(cause)

	assert.ErrorIs(t, err, ErrUserCreationFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Не удалось создать пользователя: duplicate key", err.Error())

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "USER_CREATION_FAILED", appErr.ErrorCode())

	assert.Same(t, ErrUserCreationFailed, ErrUserCreationFailed.WithCause(nil))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create order")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to create order: connection reset", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
}
