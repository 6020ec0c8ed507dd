package errors

import (
	"net/http"

	"sapphire/internal/errors"
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUsersNotFound = NewBaseError(
		http.StatusNotFound,
		"USERS_NOT_FOUND",
		"Some users not found",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"Username already taken",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_IN_USE",
		"Email already in use",
		"",
	)

	ErrUserNotApproved = NewBaseError(
		http.StatusForbidden,
		"USER_NOT_APPROVED",
		"User is not approved or has been deactivated",
		"",
	)

	ErrSuperUserExists = NewBaseError(
		http.StatusConflict,
		"SUPERUSER_EXISTS",
		"A SuperAdmin already exists",
		"",
	)

	// Authentication-related errors
	ErrInvalidUsername = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USERNAME",
		"Invalid username",
		"",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PASSWORD",
		"Invalid password",
		"",
	)

	ErrMissingBearer = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_BEARER",
		"Invalid authentication scheme, expected Bearer token",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"Token could not be verified",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token is invalid or not found in the database.",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired.",
		"",
	)

	ErrTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"TOKEN_NOT_FOUND",
		"Token not found or already deleted",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, try again later",
		"",
	)

	// OTP-related errors
	ErrOTPNotFound = NewBaseError(
		http.StatusBadRequest,
		"OTP_NOT_FOUND",
		"OTP not found or expired",
		"",
	)

	ErrOTPInvalid = NewBaseError(
		http.StatusBadRequest,
		"OTP_INVALID",
		"Invalid OTP",
		"",
	)

	ErrOTPExpired = NewBaseError(
		http.StatusBadRequest,
		"OTP_EXPIRED",
		"OTP has expired",
		"",
	)

	// Group-related errors
	ErrGroupNotFound = NewBaseError(
		http.StatusNotFound,
		"GROUP_NOT_FOUND",
		"Group not found",
		"",
	)

	ErrGroupAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"GROUP_ALREADY_EXISTS",
		"Group already exists",
		"",
	)

	// Project-related errors
	ErrProjectNotFound = NewBaseError(
		http.StatusNotFound,
		"PROJECT_NOT_FOUND",
		"Project not found",
		"",
	)

	ErrProjectsNotFound = NewBaseError(
		http.StatusNotFound,
		"PROJECTS_NOT_FOUND",
		"Some projects not found",
		"",
	)

	// Host-related errors
	ErrHostNotFound = NewBaseError(
		http.StatusNotFound,
		"HOST_NOT_FOUND",
		"Host not found",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrDeviceAlreadyExists = NewBaseError(
		http.StatusConflict,
		"DEVICE_ALREADY_EXISTS",
		"A device with this UDID already exists",
		"",
	)

	ErrDeviceAlreadyRequested = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_ALREADY_REQUESTED",
		"Device is already requested",
		"",
	)

	ErrDeviceNotPending = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_NOT_PENDING",
		"Device request is not pending",
		"",
	)

	ErrDeviceAlreadyDeregistered = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_ALREADY_DEREGISTERED",
		"Device is already deregistered",
		"",
	)

	ErrDeviceNoSecurityCode = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NO_SECURITY_CODE",
		"Device has no security code",
		"",
	)

	ErrInvalidAction = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTION",
		"Invalid action",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Invalid ID format",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
