package subscription_test

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
	"github.com/wagholimess/mess-service/internal/services/subscription"
	"github.com/wagholimess/mess-service/internal/storage"
)

// Мок для SubscriptionRepository
type SubscriptionRepoMock struct {
	mock.Mock
}

func (m *SubscriptionRepoMock) CreateSubscription(ctx context.Context, sub models.Subscription) (int, error) {
	args := m.Called(ctx, sub)
	return args.Int(0), args.Error(1)
}

func (m *SubscriptionRepoMock) PauseSubscription(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *SubscriptionRepoMock) ListUserSubscriptions(ctx context.Context, userID int) ([]*models.UserSubscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserSubscription), args.Error(1)
}

func (m *SubscriptionRepoMock) GetPlan(ctx context.Context, id int) (*models.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSubscriptionService_Create(t *testing.T) {
	messPlan := &models.Plan{
		ID: 1, Name: "Veg Basic", Price: 2400,
		DurationDays: 26, Category: models.CategoryMess,
	}
	breakfastPlan := &models.Plan{
		ID: 5, Name: "Breakfast Premium", Price: 1600,
		DurationDays: 30, Category: models.CategoryBreakfast,
	}

	tests := []struct {
		name       string
		planID     int
		setupMocks func(r *SubscriptionRepoMock)
		wantID     int
		wantErr    error
	}{
		{
			name:   "mess plan gets 4 pause days and 26 day window",
			planID: 1,
			setupMocks: func(r *SubscriptionRepoMock) {
				r.On("GetPlan", mock.Anything, 1).Return(messPlan, nil).Once()
				r.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(s models.Subscription) bool {
					return s.UserID == 10 &&
						s.PlanID == 1 &&
						s.Status == "active" &&
						s.PausedDays == 0 &&
						s.MaxPauseDays == models.MaxPauseDaysMess &&
						s.EndDate.Sub(s.StartDate) == 26*24*time.Hour
				})).Return(3, nil).Once()
			},
			wantID: 3,
		},
		{
			name:   "breakfast plan gets 26 pause days and 30 day window",
			planID: 5,
			setupMocks: func(r *SubscriptionRepoMock) {
				r.On("GetPlan", mock.Anything, 5).Return(breakfastPlan, nil).Once()
				r.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(s models.Subscription) bool {
					return s.MaxPauseDays == models.MaxPauseDaysBreakfast &&
						s.EndDate.Sub(s.StartDate) == 30*24*time.Hour
				})).Return(4, nil).Once()
			},
			wantID: 4,
		},
		{
			name:   "unknown plan",
			planID: 99,
			setupMocks: func(r *SubscriptionRepoMock) {
				r.On("GetPlan", mock.Anything, 99).Return(nil, storage.ErrPlanNotFound).Once()
			},
			wantErr: storage.ErrPlanNotFound,
		},
		{
			name:   "repository error on insert",
			planID: 1,
			setupMocks: func(r *SubscriptionRepoMock) {
				r.On("GetPlan", mock.Anything, 1).Return(messPlan, nil).Once()
				r.On("CreateSubscription", mock.Anything, mock.Anything).
					Return(0, errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(SubscriptionRepoMock)
			svc := subscription.New(repo, newTestLogger())

			tt.setupMocks(repo)

			id, err := svc.Create(context.Background(), 10, tt.planID)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestSubscriptionService_Pause(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "successful pause"},
		{name: "limit reached", repoErr: storage.ErrPauseLimitReached},
		{name: "subscription not found", repoErr: storage.ErrSubscriptionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(SubscriptionRepoMock)
			svc := subscription.New(repo, newTestLogger())

			repo.On("PauseSubscription", mock.Anything, 3).Return(tt.repoErr).Once()

			err := svc.Pause(context.Background(), 3)
			if tt.repoErr != nil {
				// Сентинельные ошибки проходят без обертки, хэндлер различает их по errors.Is
				assert.ErrorIs(t, err, tt.repoErr)
			} else {
				assert.NoError(t, err)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestSubscriptionService_List(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	svc := subscription.New(repo, newTestLogger())

	want := []*models.UserSubscription{
		{Subscription: models.Subscription{ID: 1, UserID: 10}, PlanName: "Veg Basic"},
	}
	repo.On("ListUserSubscriptions", mock.Anything, 10).Return(want, nil).Once()

	got, err := svc.List(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	repo.AssertExpectations(t)
}
