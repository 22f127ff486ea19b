package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNoDocuments  = errors.New("no input documents")
	ErrToolFailed   = errors.New("external tool failed")
	ErrInvalidInput = errors.New("invalid input")
	ErrValidation   = errors.New("validation failed")
	ErrIO           = errors.New("filesystem error")
)

// Error codes used with AppError.
const (
	CodeConfig   = "CONFIG_ERROR"
	CodeInput    = "INPUT_ERROR"
	CodeOutput   = "OUTPUT_ERROR"
	CodeManifest = "MANIFEST_ERROR"
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IOError wraps a filesystem failure so callers can match ErrIO.
func IOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewAppError(CodeOutput, fmt.Sprintf("%s %s", op, path), errors.Join(ErrIO, err))
}
