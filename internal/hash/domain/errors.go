package domain

import (
	"github.com/allisson/hashprefix/internal/errors"
)

// Hash search error definitions.
var (
	// ErrHashNotFound indicates the search exhausted its attempt budget
	// without producing a hash that starts with Prefix.
	//
	// The search itself reports this outcome through Result.Found; the CLI
	// returns this error so the process exits with status 1.
	ErrHashNotFound = errors.Wrap(errors.ErrNotFound, "no hash found with the requested prefix")

	// ErrInvalidMaxAttempts indicates a negative attempt budget.
	ErrInvalidMaxAttempts = errors.Wrap(errors.ErrInvalidInput, "max attempts must not be negative")

	// ErrInvalidLogEvery indicates a negative progress cadence.
	ErrInvalidLogEvery = errors.Wrap(errors.ErrInvalidInput, "log every must not be negative")

	// ErrInvalidHash indicates a value that is not a well formed hex digest.
	ErrInvalidHash = errors.Wrap(errors.ErrInvalidInput, "invalid hash")
)
