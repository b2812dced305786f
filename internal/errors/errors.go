// Package errors provides the sentinel errors shared by every domain package.
// Domain errors wrap these sentinels so callers can classify a failure with
// Is without depending on the package that produced it.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested value could not be produced or located.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates an argument or configuration value is invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// Wrap adds context to err while preserving the error chain. Returns nil when err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
