package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// Kind is the category every failure in the system is reported as.
// Callers branch on Kind, never on message text.
type Kind string

const (
	KindValidation      Kind = "ValidationError"
	KindUnauthenticated Kind = "Unauthenticated"
	KindForbidden       Kind = "Forbidden"
	KindNotFound        Kind = "NotFound"
	KindConflict        Kind = "Conflict"
	KindInternal        Kind = "InternalError"
)

// HTTPCode maps a kind onto its HTTP status.
func (k Kind) HTTPCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// KindOf classifies any error. Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
