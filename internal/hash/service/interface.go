// Package service provides the hash generators used by the prefix search.
package service

// Generator produces pseudo-random hex digests.
type Generator interface {
	// Generate draws a fresh random seed and returns the hex encoded digest of it.
	Generate() string

	// Validate checks that hash has the shape of a digest produced by Generate.
	Validate(hash string) error
}

// IntSource draws uniform integers in [0, n). *math/rand/v2.Rand satisfies it.
type IntSource interface {
	IntN(n int) int
}
