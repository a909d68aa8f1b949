package stats_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wagholimess/mess-service/internal/models"
	"github.com/wagholimess/mess-service/internal/services/stats"
)

// Мок для StatsRepository
type StatsRepoMock struct {
	mock.Mock
}

func (m *StatsRepoMock) CountActiveSubscriptions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepoMock) CountActiveSubscriptionsByCategory(ctx context.Context, category string) (int, error) {
	args := m.Called(ctx, category)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepoMock) SumSuccessfulPayments(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepoMock) CountPendingCateringRequests(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestStatsService_Collect(t *testing.T) {
	repo := new(StatsRepoMock)
	svc := stats.New(repo, newTestLogger())

	repo.On("CountActiveSubscriptions", mock.Anything).Return(12, nil).Once()
	repo.On("SumSuccessfulPayments", mock.Anything).Return(48000, nil).Once()
	repo.On("CountPendingCateringRequests", mock.Anything).Return(3, nil).Once()
	repo.On("CountActiveSubscriptionsByCategory", mock.Anything, models.CategoryBreakfast).
		Return(4, nil).Once()
	repo.On("CountActiveSubscriptionsByCategory", mock.Anything, models.CategoryMess).
		Return(8, nil).Once()

	got, err := svc.Collect(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, &models.AdminStats{
		ActiveSubscribers:    12,
		MonthlyRevenue:       48000,
		PendingCatering:      3,
		BreakfastSubscribers: 4,
		MessSubscribers:      8,
	}, got)

	repo.AssertExpectations(t)
}

func TestStatsService_Collect_RepositoryError(t *testing.T) {
	repo := new(StatsRepoMock)
	svc := stats.New(repo, newTestLogger())

	repo.On("CountActiveSubscriptions", mock.Anything).
		Return(0, errors.New("db error")).Once()

	got, err := svc.Collect(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)

	repo.AssertExpectations(t)
}
