package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/errors"
)

func TestValidationError_CollectsFieldMessages(t *testing.T) {
	verr := new(ValidationError)
	assert.NoError(t, verr.OrNil())

	verr.Add("phone", MsgInvalidPhone).Add("username", MsgUsernameTaken)

	assert.True(t, verr.HasErrors())
	assert.Equal(t, MsgInvalidPhone, verr.Field("phone"))
	assert.Equal(t, "", verr.Field("email"))
	assert.Equal(t, http.StatusBadRequest, verr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", verr.ErrorCode())
	assert.Contains(t, verr.Error(), "phone: ")
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := errors.Wrap(NewValidationError("phone", MsgInvalidPhone), "checkout")

	assert.True(t, errors.Is(err, ErrValidationFailed))

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgInvalidPhone, verr.Field("phone"))
}

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrOrderNotFound.WithDetails("order 7")

	assert.True(t, errors.Is(err, ErrOrderNotFound))
	assert.False(t, errors.Is(err, ErrProductNotFound))
	assert.Equal(t, "order 7", err.Details())
}
