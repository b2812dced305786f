// Package domain defines the core types of the hash prefix search: the
// alphabets, lengths and defaults it works with and the result it produces.
package domain

import "strings"

const (
	// Prefix is the leading text a hash must carry for the search to succeed.
	Prefix = "00"

	// SeedLength is the number of characters drawn for every seed string.
	SeedLength = 16

	// HashLength is the length of the hex encoded MD5 digest.
	HashLength = 32

	// Alphabet holds the characters seeds are drawn from: 26 lowercase,
	// 26 uppercase and 10 digits.
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// HexAlphabet holds every character a generated hash may contain.
	HexAlphabet = "0123456789abcdef"

	// DefaultMaxAttempts is the attempt budget of the top-level search.
	DefaultMaxAttempts = 1000

	// DefaultLogEvery is the progress cadence of the top-level search.
	// Zero disables progress output.
	DefaultLogEvery = 100
)

// Result is the outcome of one search run. Hash is empty when Found is false.
type Result struct {
	Found    bool   `json:"found"`
	Hash     string `json:"hash,omitempty"`
	Attempts int    `json:"attempts"`
}

// HasPrefix reports whether hash starts with Prefix.
func HasPrefix(hash string) bool {
	return strings.HasPrefix(hash, Prefix)
}
