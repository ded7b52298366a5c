package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "base error", err: ErrInvalidCredentials, want: KindUnauthenticated},
		{name: "wrapped base error", err: pkgerrors.Wrap(ErrActivationCodeNotFound, "activate"), want: KindNotFound},
		{name: "with details", err: ErrValidationFailed.WithDetails("email is required"), want: KindValidation},
		{name: "database error", err: NewDatabaseExecuteError(pkgerrors.New("boom"), "insert"), want: KindInternal},
		{name: "plain error", err: pkgerrors.New("unexpected"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_HTTPCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.HTTPCode())
	assert.Equal(t, http.StatusUnauthorized, KindUnauthenticated.HTTPCode())
	assert.Equal(t, http.StatusForbidden, KindForbidden.HTTPCode())
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPCode())
	assert.Equal(t, http.StatusConflict, KindConflict.HTTPCode())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.HTTPCode())
}

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("limit must be positive")

	assert.True(t, pkgerrors.Is(err, ErrValidationFailed))
	assert.False(t, pkgerrors.Is(err, ErrInvalidQuery))
	assert.Equal(t, "input validation failed: limit must be positive", err.Error())
	assert.Equal(t, "limit must be positive", err.Details())
}
