// Package errors provides the application error taxonomy used by every layer of the
// helpdesk: validation, conflict, not found, unauthorized, forbidden and internal
// failures, plus form errors that carry per-field messages back to the client.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
	ErrorTypeBadRequest   ErrorType = "bad_request"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewUnsupportedIntentError rejects a submitted intent outside create/update/delete.
func NewUnsupportedIntentError(intent string) *AppError {
	return NewForbiddenError(fmt.Sprintf("The intent %s is not supported", intent))
}

// FormError is a user-correctable failure of a submitted form. It keeps every field
// message together with the values the user sent so the form can be shown again.
type FormError struct {
	*AppError
	FieldErrors map[string]string
	Fields      map[string]string
}

// Unwrap allows errors.Is and errors.As to reach the underlying AppError
func (e *FormError) Unwrap() error {
	return e.AppError
}

// NewFieldErrors creates a validation FormError for the given field messages.
func NewFieldErrors(fieldErrors, fields map[string]string) *FormError {
	return &FormError{
		AppError:    NewValidationError("Form contains invalid fields"),
		FieldErrors: fieldErrors,
		Fields:      fields,
	}
}

// NewFormError creates a FormError with a form level message and no field messages.
func NewFormError(appErr *AppError, fields map[string]string) *FormError {
	return &FormError{
		AppError:    appErr,
		FieldErrors: map[string]string{},
		Fields:      fields,
	}
}

// WithFields attaches submitted form values to err when it is an AppError, so
// conflict and not-found failures raised below the boundary still redisplay the form.
func WithFields(err error, fields map[string]string) error {
	if err == nil {
		return nil
	}
	var formErr *FormError
	if errors.As(err, &formErr) {
		if formErr.Fields == nil {
			formErr.Fields = fields
		}
		return formErr
	}
	if appErr := GetAppError(err); appErr != nil {
		return NewFormError(appErr, fields)
	}
	return err
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetFormError extracts FormError from error
func GetFormError(err error) *FormError {
	var formErr *FormError
	if errors.As(err, &formErr) {
		return formErr
	}
	return nil
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeConflict
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeForbidden
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return strings.Contains(errStr, "unique constraint")
}
