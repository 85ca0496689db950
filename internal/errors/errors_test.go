// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %q for flag %s", "x", "-a"),
			expected: `invalid value "x" for flag -a`,
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "divisor", Message: "must be non-zero"}
	want := `validation error for "divisor": must be non-zero`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestMismatchError(t *testing.T) {
	t.Parallel()
	err := MismatchError{
		Operation: "div",
		Backends:  [2]string{"ui512", "math/big"},
		Values:    [2]string{"41", "42"},
	}
	want := "div mismatch: ui512 returned 41, math/big returned 42"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil error yields nil", func(t *testing.T) {
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("wrapped error supports errors.Is", func(t *testing.T) {
		sentinel := errors.New("sentinel")
		wrapped := WrapError(sentinel, "while doing %s", "work")
		if !errors.Is(wrapped, sentinel) {
			t.Error("wrapped error should match sentinel via errors.Is")
		}
		want := "while doing work: sentinel"
		if wrapped.Error() != want {
			t.Errorf("expected %q, got %q", want, wrapped.Error())
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	if !IsContextError(context.Canceled) {
		t.Error("context.Canceled should be a context error")
	}
	if !IsContextError(context.DeadlineExceeded) {
		t.Error("context.DeadlineExceeded should be a context error")
	}
	if IsContextError(errors.New("other")) {
		t.Error("generic error should not be a context error")
	}
	if IsContextError(nil) {
		t.Error("nil should not be a context error")
	}
}
