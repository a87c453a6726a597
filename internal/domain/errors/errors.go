package errors

import (
	"net/http"

	"agriatoo/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
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
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Credential errors: surfaced verbatim as user-facing messages and
	// never retried automatically.
	ErrEmailNotFound = NewBaseError(
		http.StatusUnauthorized,
		"EMAIL_NOT_FOUND",
		"Email not found. Please contact the administrator to register.",
		"",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_PASSWORD",
		"Invalid password. Please try again.",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Invalid email format.",
		"",
	)

	ErrTooManyAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_ATTEMPTS",
		"Too many failed attempts. Please try again later.",
		"",
	)

	ErrIdentityUnreachable = NewBaseError(
		http.StatusServiceUnavailable,
		"IDENTITY_UNREACHABLE",
		"Login service is unreachable. Please try again.",
		"",
	)

	// Authorization errors: the principal authenticated but has no seller
	// record, which is fatal for the session.
	ErrSellerNotRegistered = NewBaseError(
		http.StatusForbidden,
		"SELLER_NOT_REGISTERED",
		"Access denied. Your account is not registered as a seller. Please contact support.",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DISABLED",
		"Access denied. Your seller account has been deactivated.",
		"",
	)

	// Token errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token.",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token.",
		"",
	)

	// Upload errors: surfaced as transient messages, upload state reset,
	// no retry.
	ErrUploadInvalidType = NewBaseError(
		http.StatusBadRequest,
		"UPLOAD_INVALID_TYPE",
		"Invalid file type. Please upload JPEG, PNG, or WebP images only.",
		"",
	)

	ErrUploadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"UPLOAD_TOO_LARGE",
		"File size too large. Please upload images smaller than 5MB.",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"Failed to upload image. Please try again.",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found.",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"The order cannot move to the requested status.",
		"",
	)

	// Product errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found.",
		"",
	)

	// Notification errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found.",
		"",
	)
)

// DocumentStoreError represents a document store execution error,
// implementing the AppError interface
type DocumentStoreError struct {
	err     error
	details string
}

// NewDocumentStoreError creates a document-store-related error
func NewDocumentStoreError(err error, details string) AppError {
	return &DocumentStoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DocumentStoreError) Error() string {
	return errors.Wrap(e.err, "document store operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DocumentStoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DocumentStoreError) ErrorCode() string {
	return "DOCUMENT_STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *DocumentStoreError) Message() string {
	return "Document store operation failed."
}

// Details returns detailed error information
func (e *DocumentStoreError) Details() string {
	return e.details
}
