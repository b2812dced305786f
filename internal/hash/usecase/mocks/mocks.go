// Package mocks provides mock implementations for testing hash search consumers.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	hashDomain "github.com/allisson/hashprefix/internal/hash/domain"
)

// MockHashGenerator is a mock implementation of HashGenerator.
type MockHashGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method of HashGenerator.
func (m *MockHashGenerator) Generate() string {
	args := m.Called()
	return args.String(0)
}

// MockSearchUseCase is a mock implementation of SearchUseCase.
type MockSearchUseCase struct {
	mock.Mock
}

// Search mocks the Search method of SearchUseCase.
func (m *MockSearchUseCase) Search(
	ctx context.Context,
	maxAttempts, logEvery int,
) (*hashDomain.Result, error) {
	args := m.Called(ctx, maxAttempts, logEvery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hashDomain.Result), args.Error(1)
}

// MockBusinessMetrics is a mock implementation of metrics.BusinessMetrics.
type MockBusinessMetrics struct {
	mock.Mock
}

// RecordOperation mocks the RecordOperation method.
func (m *MockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

// RecordDuration mocks the RecordDuration method.
func (m *MockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// RecordAttempts mocks the RecordAttempts method.
func (m *MockBusinessMetrics) RecordAttempts(
	ctx context.Context,
	domain, operation string,
	attempts int,
	status string,
) {
	m.Called(ctx, domain, operation, attempts, status)
}
