package usecase

import (
	"context"
	"time"

	hashDomain "github.com/allisson/hashprefix/internal/hash/domain"
	"github.com/allisson/hashprefix/internal/metrics"
)

// searchUseCaseWithMetrics decorates SearchUseCase with metrics instrumentation.
type searchUseCaseWithMetrics struct {
	next    SearchUseCase
	metrics metrics.BusinessMetrics
}

// NewSearchUseCaseWithMetrics wraps a SearchUseCase with metrics recording.
func NewSearchUseCaseWithMetrics(useCase SearchUseCase, m metrics.BusinessMetrics) SearchUseCase {
	return &searchUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Search records count, duration and attempts of every search run.
func (s *searchUseCaseWithMetrics) Search(
	ctx context.Context,
	maxAttempts, logEvery int,
) (*hashDomain.Result, error) {
	start := time.Now()
	result, err := s.next.Search(ctx, maxAttempts, logEvery)

	status := "exhausted"
	switch {
	case err != nil:
		status = "error"
	case result.Found:
		status = "found"
	}

	s.metrics.RecordOperation(ctx, "hash", "search", status)
	s.metrics.RecordDuration(ctx, "hash", "search", time.Since(start), status)
	if err == nil {
		s.metrics.RecordAttempts(ctx, "hash", "search", result.Attempts, status)
	}

	return result, err
}
