package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/hashprefix/internal/errors"
	hashDomain "github.com/allisson/hashprefix/internal/hash/domain"
	usecaseMocks "github.com/allisson/hashprefix/internal/hash/usecase/mocks"
	"github.com/allisson/hashprefix/internal/metrics"
)

const foundHash = "00d41d8cd98f00b204e9800998ecf842"

func TestRunSearch(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success-text", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockSearchUseCase{}
		mockUseCase.On("Search", ctx, 1000, 100).
			Return(&hashDomain.Result{Found: true, Hash: foundHash, Attempts: 42}, nil)

		var out bytes.Buffer
		err := RunSearch(ctx, mockUseCase, nil, logger, IOTuple{Writer: &out}, 1000, 100, FormatText)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		require.Len(t, lines, 5)
		assert.Equal(t, "Starting random hash generator...", lines[0])
		assert.Equal(t, "Looking for a hash that starts with '00'...", lines[1])
		assert.Equal(t, strings.Repeat("-", 60), lines[2])
		assert.Equal(t, strings.Repeat("-", 60), lines[3])
		assert.Equal(t, "✓ Test PASSED: Found hash '"+foundHash+"' in 42 attempts", lines[4])
		mockUseCase.AssertExpectations(t)
	})

	t.Run("failure-text", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockSearchUseCase{}
		mockUseCase.On("Search", ctx, 1000, 100).
			Return(&hashDomain.Result{Found: false, Attempts: 1000}, nil)

		var out bytes.Buffer
		err := RunSearch(ctx, mockUseCase, nil, logger, IOTuple{Writer: &out}, 1000, 100, FormatText)

		require.Error(t, err)
		assert.ErrorIs(t, err, hashDomain.ErrHashNotFound)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
		assert.Contains(t, out.String(), "✗ Test FAILED: No hash found after 1000 attempts")
	})

	t.Run("success-json", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockSearchUseCase{}
		mockUseCase.On("Search", ctx, 500, 0).
			Return(&hashDomain.Result{Found: true, Hash: foundHash, Attempts: 7}, nil)

		var out bytes.Buffer
		err := RunSearch(ctx, mockUseCase, nil, logger, IOTuple{Writer: &out}, 500, 0, FormatJSON)

		require.NoError(t, err)
		var result hashDomain.Result
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, hashDomain.Result{Found: true, Hash: foundHash, Attempts: 7}, result)
	})

	t.Run("with-metrics", func(t *testing.T) {
		provider, err := metrics.NewProvider("cmd_test")
		require.NoError(t, err)
		counter, err := provider.MeterProvider().Meter("cmd_test").Int64Counter("cmd_test_runs_total")
		require.NoError(t, err)
		counter.Add(ctx, 1)

		mockUseCase := &usecaseMocks.MockSearchUseCase{}
		mockUseCase.On("Search", ctx, 10, 100).
			Return(&hashDomain.Result{Found: true, Hash: foundHash, Attempts: 3}, nil)

		var out bytes.Buffer
		err = RunSearch(ctx, mockUseCase, provider, logger, IOTuple{Writer: &out}, 10, 100, FormatText)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "cmd_test_runs_total")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockSearchUseCase{}
		mockUseCase.On("Search", ctx, -1, 100).Return(nil, hashDomain.ErrInvalidMaxAttempts)

		var out bytes.Buffer
		err := RunSearch(ctx, mockUseCase, nil, logger, IOTuple{Writer: &out}, -1, 100, FormatText)

		require.Error(t, err)
		assert.ErrorIs(t, err, hashDomain.ErrInvalidMaxAttempts)
		assert.False(t, errors.Is(err, hashDomain.ErrHashNotFound))
	})

	t.Run("json-with-metrics", func(t *testing.T) {
		provider, err := metrics.NewProvider("cmd_json")
		require.NoError(t, err)
		counter, err := provider.MeterProvider().Meter("cmd_json").Int64Counter("cmd_json_runs_total")
		require.NoError(t, err)
		counter.Add(ctx, 1)

		mockUseCase := &usecaseMocks.MockSearchUseCase{}
		mockUseCase.On("Search", ctx, 10, 100).
			Return(&hashDomain.Result{Found: true, Hash: foundHash, Attempts: 3}, nil)

		var out, errOut bytes.Buffer
		err = RunSearch(ctx, mockUseCase, provider, logger, IOTuple{Writer: &out, ErrWriter: &errOut}, 10, 100, FormatJSON)

		require.NoError(t, err)
		var result hashDomain.Result
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, hashDomain.Result{Found: true, Hash: foundHash, Attempts: 3}, result)
		assert.NotContains(t, out.String(), "cmd_json_runs_total")
		assert.Contains(t, errOut.String(), "cmd_json_runs_total")
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "text", expected: FormatText},
		{input: "json", expected: FormatJSON},
		{input: "yaml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidInput))
				assert.Contains(t, err.Error(), "invalid format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}
