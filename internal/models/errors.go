package models

import (
	"fmt"
)

// Error codes carried by AppError. The HTTP layer maps each code to a status.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeForbidden    = "FORBIDDEN"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewForbiddenError reports that the caller is authenticated but does not own the resource.
func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// Messages shared between repositories and services.
const (
	MsgThreadNotFound  = "thread tidak ditemukan"
	MsgCommentNotFound = "komentar tidak ditemukan"
	MsgReplyNotFound   = "balasan tidak ditemukan"
	MsgForbidden       = "anda tidak berhak mengakses resource ini"
)

// MsgRefreshTokenNotFound is returned when a refresh token was never issued or was already revoked.
const MsgRefreshTokenNotFound = "refresh token tidak ditemukan di database"
