package service

import (
	"crypto/md5" //nolint:gosec // demonstration digest, no security property relies on it
	"encoding/hex"
	"math/rand/v2"

	validation "github.com/jellydator/validation"

	"github.com/allisson/hashprefix/internal/errors"
	hashDomain "github.com/allisson/hashprefix/internal/hash/domain"
	appValidation "github.com/allisson/hashprefix/internal/validation"
)

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

type md5Generator struct {
	source IntSource
}

// NewMD5Generator creates a generator that hashes random alphanumeric seeds with MD5.
// Seed characters are drawn from source; a nil source uses the randomly seeded
// math/rand/v2 top-level generator. Pass a seeded *rand.Rand for reproducible output.
// The generator is not safe for concurrent use unless source is.
//
// MD5 is not suitable for security use. It is kept because callers depend on
// the 32 character digest length.
func NewMD5Generator(source IntSource) Generator {
	if source == nil {
		source = globalSource{}
	}
	return &md5Generator{source: source}
}

// Generate draws SeedLength characters uniformly with replacement from
// hashDomain.Alphabet and returns the lowercase hex MD5 digest of the seed.
func (g *md5Generator) Generate() string {
	sum := md5.Sum(g.seed()) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// Validate checks the hash is HashLength lowercase hex characters.
func (g *md5Generator) Validate(hash string) error {
	err := validation.Validate(hash, appValidation.HexDigest{Length: hashDomain.HashLength})
	if err != nil {
		return errors.Wrap(hashDomain.ErrInvalidHash, err.Error())
	}
	return nil
}

func (g *md5Generator) seed() []byte {
	seed := make([]byte, hashDomain.SeedLength)
	for i := range seed {
		seed[i] = hashDomain.Alphabet[g.source.IntN(len(hashDomain.Alphabet))]
	}
	return seed
}
