package plan_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wagholimess/mess-service/internal/models"
	"github.com/wagholimess/mess-service/internal/services/plan"
)

// Мок для PlanRepository
type PlanRepoMock struct {
	mock.Mock
}

func (m *PlanRepoMock) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Plan), args.Error(1)
}

// Мок для Cache
type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	if args.Bool(0) {
		*(result.(*[]*models.Plan)) = []*models.Plan{{ID: 1, Name: "cached"}}
	}
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestPlanService_List(t *testing.T) {
	fromStorage := []*models.Plan{
		{ID: 1, Name: "Veg Basic", Price: 2400, DurationDays: 26, Category: models.CategoryMess},
	}

	tests := []struct {
		name       string
		setupMocks func(r *PlanRepoMock, c *CacheMock)
		wantName   string
		wantErr    bool
	}{
		{
			name: "cache hit skips storage",
			setupMocks: func(r *PlanRepoMock, c *CacheMock) {
				c.On("Get", "plans:all", mock.Anything).Return(true, nil).Once()
			},
			wantName: "cached",
		},
		{
			name: "cache miss reads storage and fills cache",
			setupMocks: func(r *PlanRepoMock, c *CacheMock) {
				c.On("Get", "plans:all", mock.Anything).Return(false, nil).Once()
				r.On("ListPlans", mock.Anything).Return(fromStorage, nil).Once()
				c.On("Set", "plans:all", mock.Anything, time.Hour).Return(nil).Once()
			},
			wantName: "Veg Basic",
		},
		{
			name: "storage error",
			setupMocks: func(r *PlanRepoMock, c *CacheMock) {
				c.On("Get", "plans:all", mock.Anything).Return(false, nil).Once()
				r.On("ListPlans", mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(PlanRepoMock)
			cache := new(CacheMock)
			svc := plan.New(repo, cache, newTestLogger())

			tt.setupMocks(repo, cache)

			got, err := svc.List(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantName, got[0].Name)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}
