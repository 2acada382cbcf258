package mmu

import (
	"errors"
	"fmt"
)

// ErrorCode represents different types of simulator errors
type ErrorCode int

const (
	// Generic errors
	ErrCodeUnknown ErrorCode = iota
	ErrCodeInternal

	// Configuration errors
	ErrCodeInvalidFrameCount
	ErrCodeUnknownPolicy
	ErrCodeInvalidConfig

	// Access errors
	ErrCodeInvalidPage

	// Frame Table / Page Table disagreement
	ErrCodeInvariant
)

// SimError represents a simulator error with context
type SimError struct {
	Code    ErrorCode
	Message string
	Op      string // Operation that failed
	Err     error  // Underlying error (if any)
}

// Error implements the error interface
func (e *SimError) Error() string {
	if e.Op != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *SimError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a specific error code
func (e *SimError) Is(target error) bool {
	if t, ok := target.(*SimError); ok {
		return e.Code == t.Code
	}
	return false
}

// NewSimError creates a new simulator error
func NewSimError(code ErrorCode, op, message string, err error) *SimError {
	return &SimError{
		Code:    code,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// Helper functions for common errors

func ErrInvalidFrameCount(op string, frames int) *SimError {
	return NewSimError(
		ErrCodeInvalidFrameCount,
		op,
		fmt.Sprintf("frame count must be at least 1, got %d", frames),
		nil,
	)
}

func ErrUnknownPolicy(op string, policy string) *SimError {
	return NewSimError(
		ErrCodeUnknownPolicy,
		op,
		fmt.Sprintf("unknown replacement policy %q (must be clock, lru or rand)", policy),
		nil,
	)
}

func ErrInvalidConfig(op string, message string) *SimError {
	return NewSimError(ErrCodeInvalidConfig, op, message, nil)
}

func ErrInvalidPage(op string, page PageID) *SimError {
	return NewSimError(
		ErrCodeInvalidPage,
		op,
		fmt.Sprintf("page number %d is negative", page),
		nil,
	)
}

func ErrInvariant(op string, message string) *SimError {
	return NewSimError(ErrCodeInvariant, op, message, nil)
}

// IsErrorCode checks if an error, or any error it wraps, has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var se *SimError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrCodeUnknown
func GetErrorCode(err error) ErrorCode {
	var se *SimError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeUnknown
}
