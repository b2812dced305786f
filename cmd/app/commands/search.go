package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	hashDomain "github.com/allisson/hashprefix/internal/hash/domain"
	hashUseCase "github.com/allisson/hashprefix/internal/hash/usecase"
	"github.com/allisson/hashprefix/internal/metrics"
)

var separator = strings.Repeat("-", 60)

// RunSearch runs the prefix search and prints the report to stdio.Writer.
// With FormatJSON only the result document is printed. When provider is not
// nil the collected metrics are written in Prometheus text format: after the
// report for FormatText, to stdio.ErrWriter for FormatJSON.
//
// Returns hashDomain.ErrHashNotFound when the attempt budget is exhausted so
// the caller can exit with status 1.
func RunSearch(
	ctx context.Context,
	useCase hashUseCase.SearchUseCase,
	provider *metrics.Provider,
	logger *slog.Logger,
	stdio IOTuple,
	maxAttempts int,
	logEvery int,
	format Format,
) error {
	writer := stdio.Writer

	logger.Info("starting hash search",
		slog.Int("max_attempts", maxAttempts),
		slog.Int("log_every", logEvery),
	)

	if format == FormatText {
		_, _ = fmt.Fprintln(writer, "Starting random hash generator...")
		_, _ = fmt.Fprintf(writer, "Looking for a hash that starts with '%s'...\n", hashDomain.Prefix)
		_, _ = fmt.Fprintln(writer, separator)
	}

	result, err := useCase.Search(ctx, maxAttempts, logEvery)
	if err != nil {
		return fmt.Errorf("failed to search hash: %w", err)
	}

	metricsWriter := writer
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, _ = fmt.Fprintln(writer, string(data))
		metricsWriter = stdio.ErrWriter
	default:
		_, _ = fmt.Fprintln(writer, separator)
		if result.Found {
			_, _ = fmt.Fprintf(writer, "✓ Test PASSED: Found hash '%s' in %d attempts\n", result.Hash, result.Attempts)
		} else {
			_, _ = fmt.Fprintf(writer, "✗ Test FAILED: No hash found after %d attempts\n", result.Attempts)
		}
	}

	if provider != nil && metricsWriter != nil {
		if err := provider.WriteText(metricsWriter); err != nil {
			logger.Error("failed to write metrics", slog.Any("error", err))
		}
	}

	logger.Info("hash search finished",
		slog.Bool("found", result.Found),
		slog.Int("attempts", result.Attempts),
	)

	if !result.Found {
		return hashDomain.ErrHashNotFound
	}
	return nil
}
