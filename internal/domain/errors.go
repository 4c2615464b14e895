package domain

import (
	"errors"
	"fmt"
)

// Error types for domain-specific errors
type ErrorType string

const (
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
	ErrorTypeDecode          ErrorType = "decode"
	ErrorTypePageRange       ErrorType = "page_range"
	ErrorTypeImageExtraction ErrorType = "image_extraction"
	ErrorTypeIO              ErrorType = "io"
	ErrorTypeConfig          ErrorType = "config"
)

// DomainError represents a domain-specific error with context
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new domain error
func NewError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether err is a DomainError of the given type
func IsType(err error, errType ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type == errType
	}
	return false
}

// Common error constructors
func NotFoundError(message string, err error) *DomainError {
	return NewError(ErrorTypeNotFound, message, err)
}

func InvalidArgumentError(message string, err error) *DomainError {
	return NewError(ErrorTypeInvalidArgument, message, err)
}

func DecodeError(message string, err error) *DomainError {
	return NewError(ErrorTypeDecode, message, err)
}

func PageRangeError(message string, err error) *DomainError {
	return NewError(ErrorTypePageRange, message, err)
}

func ImageExtractionError(message string, err error) *DomainError {
	return NewError(ErrorTypeImageExtraction, message, err)
}

func IOError(message string, err error) *DomainError {
	return NewError(ErrorTypeIO, message, err)
}

func ConfigError(message string, err error) *DomainError {
	return NewError(ErrorTypeConfig, message, err)
}
