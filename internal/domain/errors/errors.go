package errors

import (
	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Taxonomy category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches any BaseError carrying the same business code, so WithDetails copies
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Kind returns the taxonomy category
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		KindNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrAccountAlreadyExists = NewBaseError(
		KindConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"username or email is already registered",
		"",
	)

	ErrActivationCodeNotFound = NewBaseError(
		KindNotFound,
		"ACTIVATION_CODE_NOT_FOUND",
		"activation code is invalid or already used",
		"",
	)

	ErrActivationConflict = NewBaseError(
		KindConflict,
		"ACTIVATION_CONFLICT",
		"account is no longer pending activation",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		KindUnauthenticated,
		"INVALID_CREDENTIALS",
		"identifier or password is incorrect",
		"",
	)

	ErrMissingToken = NewBaseError(
		KindUnauthenticated,
		"MISSING_TOKEN",
		"authorization bearer token is required",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		KindUnauthenticated,
		"TOKEN_MALFORMED",
		"token is malformed",
		"",
	)

	ErrTokenSignatureInvalid = NewBaseError(
		KindUnauthenticated,
		"TOKEN_SIGNATURE_INVALID",
		"token signature is invalid",
		"",
	)

	ErrTokenExpired = NewBaseError(
		KindUnauthenticated,
		"TOKEN_EXPIRED",
		"token has expired",
		"",
	)

	ErrRoleNotAllowed = NewBaseError(
		KindForbidden,
		"ROLE_NOT_ALLOWED",
		"your role is not allowed to access this resource",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		KindValidation,
		"PASSWORD_STRENGTH",
		"password does not meet the strength requirements",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		KindValidation,
		"PASSWORD_MISMATCH",
		"old password is incorrect",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidQuery = NewBaseError(
		KindValidation,
		"INVALID_QUERY",
		"query parameters are invalid",
		"",
	)

	// Catalog-related errors
	ErrBrandNotFound = NewBaseError(
		KindNotFound,
		"BRAND_NOT_FOUND",
		"brand not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		KindNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrBannerNotFound = NewBaseError(
		KindNotFound,
		"BANNER_NOT_FOUND",
		"banner not found",
		"",
	)

	// Collaborator failures
	ErrMailDeliveryFailed = NewBaseError(
		KindInternal,
		"MAIL_DELIVERY_FAILED",
		"failed to send email",
		"",
	)

	ErrMediaStorageFailed = NewBaseError(
		KindInternal,
		"MEDIA_STORAGE_FAILED",
		"media storage operation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		KindConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the taxonomy category
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return KindInternal.HTTPCode()
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
