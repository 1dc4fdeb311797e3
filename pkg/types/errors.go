package types

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation"
	ErrorTypeAuthorization  ErrorType = "authorization"
	ErrorTypeAuthentication ErrorType = "authentication"
	ErrorTypeNotFound       ErrorType = "not_found"
	ErrorTypeConflict       ErrorType = "conflict"
	ErrorTypeInternal       ErrorType = "internal"
)

// HMSError represents a structured error in the system
type HMSError struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *HMSError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *HMSError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeDuplicateUsername = "DUPLICATE_USERNAME"
	ErrCodeLastAdmin         = "LAST_ADMIN_PROTECTED"
	ErrCodeAuthFailed        = "AUTH_FAILED"
	ErrCodePermissionDenied  = "PERMISSION_DENIED"
	ErrCodeSelfDeletion      = "SELF_DELETION_FORBIDDEN"
	ErrCodeNoSession         = "NO_ACTIVE_SESSION"
	ErrCodeInvalidInput      = "INVALID_INPUT"
)

// NewNotFoundError creates a new not found error
func NewNotFoundError(code, message string) *HMSError {
	return &HMSError{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(code, message string) *HMSError {
	return &HMSError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(code, message string) *HMSError {
	return &HMSError{
		Type:    ErrorTypeConflict,
		Code:    code,
		Message: message,
	}
}

// NewAuthenticationError creates a new authentication error
func NewAuthenticationError(code, message string) *HMSError {
	return &HMSError{
		Type:    ErrorTypeAuthentication,
		Code:    code,
		Message: message,
	}
}

// NewAuthorizationError creates a new authorization error
func NewAuthorizationError(code, message string) *HMSError {
	return &HMSError{
		Type:    ErrorTypeAuthorization,
		Code:    code,
		Message: message,
	}
}

// ErrorCode extracts the code of a structured error, or "" for other errors
func ErrorCode(err error) string {
	var hmsErr *HMSError
	if errors.As(err, &hmsErr) {
		return hmsErr.Code
	}
	return ""
}

// IsCode reports whether err is a structured error carrying the given code
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}
