package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "wrap nil error",
			err:      nil,
			msg:      "additional context",
			expected: "",
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			msg:      "additional context",
			expected: "additional context: original error",
		},
		{
			name:     "wrap sentinel error",
			err:      ErrUnknownOS,
			msg:      "classify \"plan9\"",
			expected: "classify \"plan9\": unknown operating system",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.msg)
			if tt.err == nil {
				if result != nil {
					t.Errorf("Expected nil, got %v", result)
				}
				return
			}
			if result.Error() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result.Error())
			}
			// Test that the original error is wrapped
			if !errors.Is(result, tt.err) {
				t.Errorf("Expected wrapped error to contain original error")
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	result := Wrapf(ErrInvalidIntegerSize, "%d bytes", 3)
	if result.Error() != "3 bytes: invalid integer size" {
		t.Errorf("Unexpected message: %q", result.Error())
	}
	if !errors.Is(result, ErrInvalidIntegerSize) {
		t.Errorf("Expected wrapped error to contain sentinel")
	}
	if Wrapf(nil, "ignored %d", 1) != nil {
		t.Errorf("Expected nil when wrapping nil")
	}
}
