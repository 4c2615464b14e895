package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DomainError
		want string
	}{
		{
			name: "with cause",
			err:  NotFoundError("document not found: a.pdf", errors.New("stat failed")),
			want: "[not_found] document not found: a.pdf: stat failed",
		},
		{
			name: "without cause",
			err:  InvalidArgumentError("page number must be greater than 0", nil),
			want: "[invalid_argument] page number must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := ImageExtractionError("failed to write image", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Expected Unwrap to return the cause")
	}
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{"matching type", NotFoundError("missing", nil), ErrorTypeNotFound, true},
		{"different type", NotFoundError("missing", nil), ErrorTypeDecode, false},
		{"wrapped domain error", fmt.Errorf("outer: %w", PageRangeError("past end", nil)), ErrorTypePageRange, true},
		{"plain error", errors.New("plain"), ErrorTypeNotFound, false},
		{"nil error", nil, ErrorTypeNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsType(tt.err, tt.errType); got != tt.want {
				t.Errorf("IsType() = %v, want %v", got, tt.want)
			}
		})
	}
}
