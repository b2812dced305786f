// Package usecase implements the bounded prefix search over generated hashes.
package usecase

import (
	"context"

	hashDomain "github.com/allisson/hashprefix/internal/hash/domain"
)

// HashGenerator produces one hex digest per call.
type HashGenerator interface {
	Generate() string
}

// SearchUseCase defines the prefix search business logic.
type SearchUseCase interface {
	// Search generates up to maxAttempts hashes and stops at the first one
	// starting with hashDomain.Prefix. When logEvery is nonzero a progress line
	// is written for every attempt that is a multiple of it.
	//
	// Exhausting the budget is not an error: it is reported through
	// Result.Found. Errors are returned only for negative arguments.
	Search(ctx context.Context, maxAttempts, logEvery int) (*hashDomain.Result, error)
}
