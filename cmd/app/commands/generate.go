package commands

import (
	"fmt"
	"io"
	"log/slog"

	apperrors "github.com/allisson/hashprefix/internal/errors"
	hashUseCase "github.com/allisson/hashprefix/internal/hash/usecase"
)

// RunGenerate prints count generated hashes to writer, one per line.
func RunGenerate(generator hashUseCase.HashGenerator, logger *slog.Logger, writer io.Writer, count int) error {
	if count < 1 {
		return apperrors.Wrapf(apperrors.ErrInvalidInput, "invalid count: %d (must be at least 1)", count)
	}

	logger.Debug("generating hashes", slog.Int("count", count))

	for i := 0; i < count; i++ {
		if _, err := fmt.Fprintln(writer, generator.Generate()); err != nil {
			return fmt.Errorf("failed to write hash: %w", err)
		}
	}

	return nil
}
