// Package validation provides custom validation rules for the application.
package validation

import (
	"strconv"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/hashprefix/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// HexDigest validates a lowercase hexadecimal digest of a fixed length.
type HexDigest struct {
	Length int
}

// Validate checks the value is a string of Length characters from [0-9a-f].
func (h HexDigest) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_hex_digest", "digest must be a string")
	}

	if len(s) != h.Length {
		return validation.NewError(
			"validation_hex_digest_length",
			"digest must be exactly "+strconv.Itoa(h.Length)+" characters",
		)
	}

	for i := 0; i < len(s); i++ {
		if !isLowerHex(s[i]) {
			return validation.NewError(
				"validation_hex_digest_charset",
				"digest must contain only lowercase hexadecimal characters",
			)
		}
	}

	return nil
}

// LogLevel validates one of the slog level names understood by the application.
var LogLevel = validation.In("debug", "info", "warn", "error").
	Error("must be one of debug, info, warn, error")

// NonNegative rejects values below zero.
var NonNegative = validation.Min(0).Error("must not be negative")

func isLowerHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
