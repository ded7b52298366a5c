package middleware

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/api/response"
	domainerrors "catalog/internal/domain/errors"
	logs "catalog/internal/infra/log"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind() == domainerrors.KindInternal {
			m.logUnhandled(c, err)
		}

		_ = response.AppError(c, appErr)

		return
	}

	// Routing, binding and body limit errors raised by echo itself
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}

		_ = response.Error(c, httpErr.Code, kindForStatus(httpErr.Code), "HTTP_ERROR", message, nil)

		return
	}

	m.logUnhandled(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	logs.FromContext(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func kindForStatus(code int) domainerrors.Kind {
	switch code {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return domainerrors.KindValidation
	case http.StatusUnauthorized:
		return domainerrors.KindUnauthenticated
	case http.StatusForbidden:
		return domainerrors.KindForbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return domainerrors.KindNotFound
	case http.StatusConflict:
		return domainerrors.KindConflict
	default:
		return domainerrors.KindInternal
	}
}
