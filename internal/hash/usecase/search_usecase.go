package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	hashDomain "github.com/allisson/hashprefix/internal/hash/domain"
)

type searchUseCase struct {
	generator HashGenerator
	out       io.Writer
	logger    *slog.Logger
}

// NewSearchUseCase creates a SearchUseCase that writes progress and outcome
// lines to out and structured diagnostics to logger.
func NewSearchUseCase(generator HashGenerator, out io.Writer, logger *slog.Logger) SearchUseCase {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &searchUseCase{
		generator: generator,
		out:       out,
		logger:    logger,
	}
}

// Search runs a linear scan over attempts 1..maxAttempts with early termination.
func (s *searchUseCase) Search(ctx context.Context, maxAttempts, logEvery int) (*hashDomain.Result, error) {
	if maxAttempts < 0 {
		return nil, hashDomain.ErrInvalidMaxAttempts
	}
	if logEvery < 0 {
		return nil, hashDomain.ErrInvalidLogEvery
	}

	logger := s.logger.With(slog.String("run_id", uuid.Must(uuid.NewV7()).String()))
	logger.DebugContext(ctx, "starting hash search",
		slog.Int("max_attempts", maxAttempts),
		slog.Int("log_every", logEvery),
		slog.String("prefix", hashDomain.Prefix),
	)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		hash := s.generator.Generate()

		if logEvery != 0 && attempt%logEvery == 0 {
			_, _ = fmt.Fprintf(s.out, "Attempt %d: %s\n", attempt, hash)
		}

		if hashDomain.HasPrefix(hash) {
			_, _ = fmt.Fprintf(s.out, "\nSuccess! Found hash starting with '%s': %s\n", hashDomain.Prefix, hash)
			logger.DebugContext(ctx, "hash found",
				slog.String("hash", hash),
				slog.Int("attempts", attempt),
			)
			return &hashDomain.Result{Found: true, Hash: hash, Attempts: attempt}, nil
		}
	}

	_, _ = fmt.Fprintf(
		s.out,
		"\nFailed to find hash starting with '%s' after %d attempts.\n",
		hashDomain.Prefix,
		maxAttempts,
	)
	logger.DebugContext(ctx, "hash search exhausted", slog.Int("attempts", maxAttempts))

	return &hashDomain.Result{Found: false, Attempts: maxAttempts}, nil
}
