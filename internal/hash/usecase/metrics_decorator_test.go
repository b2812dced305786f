package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	hashDomain "github.com/allisson/hashprefix/internal/hash/domain"
	"github.com/allisson/hashprefix/internal/hash/usecase"
	usecaseMocks "github.com/allisson/hashprefix/internal/hash/usecase/mocks"
)

func TestSearchUseCaseWithMetrics_Search(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		result         *hashDomain.Result
		err            error
		expectedStatus string
	}{
		{
			name:           "Found",
			result:         &hashDomain.Result{Found: true, Hash: matchHash, Attempts: 12},
			expectedStatus: "found",
		},
		{
			name:           "Exhausted",
			result:         &hashDomain.Result{Found: false, Attempts: 1000},
			expectedStatus: "exhausted",
		},
		{
			name:           "Error",
			err:            hashDomain.ErrInvalidMaxAttempts,
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockNext := &usecaseMocks.MockSearchUseCase{}
			mockMetrics := &usecaseMocks.MockBusinessMetrics{}
			uc := usecase.NewSearchUseCaseWithMetrics(mockNext, mockMetrics)

			if tt.err != nil {
				mockNext.On("Search", ctx, -1, 100).Return(nil, tt.err).Once()
			} else {
				mockNext.On("Search", ctx, 1000, 100).Return(tt.result, nil).Once()
				mockMetrics.On("RecordAttempts", ctx, "hash", "search", tt.result.Attempts, tt.expectedStatus).
					Return().
					Once()
			}
			mockMetrics.On("RecordOperation", ctx, "hash", "search", tt.expectedStatus).Return().Once()
			mockMetrics.On("RecordDuration", ctx, "hash", "search", mock.AnythingOfType("time.Duration"), tt.expectedStatus).
				Return().
				Once()

			var (
				result *hashDomain.Result
				err    error
			)
			if tt.err != nil {
				result, err = uc.Search(ctx, -1, 100)
			} else {
				result, err = uc.Search(ctx, 1000, 100)
			}

			assert.Equal(t, tt.result, result)
			assert.ErrorIs(t, err, tt.err)
			mockNext.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
			if tt.err != nil {
				mockMetrics.AssertNotCalled(t, "RecordAttempts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
