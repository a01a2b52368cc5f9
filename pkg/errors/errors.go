// Package errors defines the error values shared across the go-platform
// packages.
package errors

import "fmt"

// Common error types.
var (
	// Classification errors.
	ErrUnknownArchitecture = fmt.Errorf("unknown architecture")
	ErrUnknownOS           = fmt.Errorf("unknown operating system")

	// Version errors.
	ErrMalformedVersion = fmt.Errorf("malformed version string")
	ErrInvalidVersion   = fmt.Errorf("invalid version component")

	// Width errors.
	ErrInvalidIntegerSize = fmt.Errorf("invalid integer size")

	// Probe errors.
	ErrProbeFailed = fmt.Errorf("failed to probe current platform")

	// Selector errors.
	ErrInvalidSelector = fmt.Errorf("invalid platform selector")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
