package fritzerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeService, Message: `unknown service: "WLANConfiguration9"`},
			expected: `[SERVICE_ERROR] unknown service: "WLANConfiguration9"`,
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeResource, "failed to load script", errors.New("permission denied")),
			expected: "[RESOURCE_ERROR] failed to load script: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeConnection, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeService, Message: "test error"}
	err2 := &Error{Code: ErrCodeService, Message: "another error"}
	err3 := &Error{Code: ErrCodeAction, Message: "action error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{
			name: "matching code",
			err:  NewServiceError("unknown service", nil),
			code: ErrCodeService,
			want: true,
		},
		{
			name: "different code",
			err:  NewServiceError("unknown service", nil),
			code: ErrCodeAction,
			want: false,
		},
		{
			name: "wrapped in plain error",
			err:  fmt.Errorf("call failed: %w", NewArrayIndexError("index 3 out of range", nil)),
			code: ErrCodeArrayIndex,
			want: true,
		},
		{
			name: "plain error without code",
			err:  errors.New("something else"),
			code: ErrCodeService,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			code: ErrCodeService,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstructorCodes(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name string
		err  *Error
		code ErrorCode
	}{
		{"connection", NewConnectionError("m", cause), ErrCodeConnection},
		{"service", NewServiceError("m", cause), ErrCodeService},
		{"action", NewActionError("m", cause), ErrCodeAction},
		{"argument", NewArgumentError("m", cause), ErrCodeArgument},
		{"array index", NewArrayIndexError("m", cause), ErrCodeArrayIndex},
		{"key not found", NewKeyNotFoundError("m", cause), ErrCodeKeyNotFound},
		{"type mismatch", NewTypeMismatchError("m", cause), ErrCodeTypeMismatch},
		{"authorization", NewAuthorizationError("m", cause), ErrCodeAuthorization},
		{"resource", NewResourceError("m", cause), ErrCodeResource},
		{"validation", NewValidationError("m", cause), ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.code)
			}
			if tt.err.Cause != cause {
				t.Errorf("Expected cause to be preserved")
			}
		})
	}
}

func TestNewKeyNotFoundError(t *testing.T) {
	err := NewKeyNotFoundError(`key not found: "model_name"`, nil)

	if err.Code != ErrCodeKeyNotFound {
		t.Errorf("Expected code %v, got %v", ErrCodeKeyNotFound, err.Code)
	}

	if err.Message != `key not found: "model_name"` {
		t.Errorf("Expected message to be preserved, got %v", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("Expected no cause")
	}
}

func TestNewTypeMismatchError(t *testing.T) {
	cause := errors.New("strconv: parsing failed")
	err := NewTypeMismatchError("expected int-compatible value", cause)

	if err.Code != ErrCodeTypeMismatch {
		t.Errorf("Expected code %v, got %v", ErrCodeTypeMismatch, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("Expected cause to be preserved")
	}
}
