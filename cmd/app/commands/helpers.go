// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/hashprefix/internal/app"
	apperrors "github.com/allisson/hashprefix/internal/errors"
)

// IOTuple holds the report and log writers for commands, allowing for testing.
type IOTuple struct {
	Writer    io.Writer
	ErrWriter io.Writer
}

// DefaultIO returns an IOTuple with os.Stdout and os.Stderr.
func DefaultIO() IOTuple {
	return IOTuple{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// Format is the output format of a search report.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts the format flag into a Format.
// Returns an error wrapping ErrInvalidInput for unknown values.
func ParseFormat(format string) (Format, error) {
	switch Format(format) {
	case FormatText, FormatJSON:
		return Format(format), nil
	default:
		return "", apperrors.Wrapf(
			apperrors.ErrInvalidInput,
			"invalid format: %s (valid options: text, json)",
			format,
		)
	}
}
