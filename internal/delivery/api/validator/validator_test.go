package validator

import (
	"testing"

	domainerrors "catalog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Internal        string `json:"-" validate:"omitempty"`
}

func TestCustomValidator_Valid(t *testing.T) {
	cv := New()

	err := cv.Validate(&signupRequest{
		Email:           "admin@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
	})

	assert.NoError(t, err)
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	cv := New()

	err := cv.Validate(&signupRequest{
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.KindValidation, appErr.Kind())
	assert.Contains(t, appErr.Details(), "email: must be a valid email")
	assert.Contains(t, appErr.Details(), "password: must be at least 8 characters")
	assert.Contains(t, appErr.Details(), "confirmPassword: must match password")
}

func TestCustomValidator_RequiredFields(t *testing.T) {
	cv := New()

	err := cv.Validate(&signupRequest{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "email: is required; password: is required; confirmPassword: is required", appErr.Details())
}
