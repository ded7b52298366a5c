package response

import (
	"net/http"

	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/query"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    any       `json:"data"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"` // User-friendly error message
	Kind    domainerrors.Kind `json:"kind"`    // Taxonomy category, e.g. "NotFound"
	Error   *ErrorInfo        `json:"error"`
	Meta    *MetaInfo         `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// PageMeta is the metadata of a paginated listing
type PageMeta struct {
	Total      int64  `json:"total"`
	TotalPages int    `json:"totalPages"`
	Current    int    `json:"current"`
	RequestID  string `json:"request_id"`
}

// PaginatedResponse defines the structure for listing responses
type PaginatedResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    any       `json:"data"`
	Meta    *PageMeta `json:"meta"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Paginated returns one page of a listing with its totals
func Paginated[T any](c echo.Context, message string, result *query.Result[T]) error {
	return c.JSON(http.StatusOK, PaginatedResponse{
		Success: true,
		Message: message,
		Data:    result.Items,
		Meta: &PageMeta{
			Total:      result.Total,
			TotalPages: result.TotalPages,
			Current:    result.Current,
			RequestID:  deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, kind domainerrors.Kind, errorCode, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Kind:    kind,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.KindValidation, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, domainerrors.KindUnauthenticated, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, domainerrors.KindInternal, errorCode, message, nil)
}

// AppError renders an application error
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.Kind(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Anything outside the taxonomy is returned for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Kind() != domainerrors.KindInternal {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
