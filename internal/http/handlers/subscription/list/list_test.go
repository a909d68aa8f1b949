package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wagholimess/mess-service/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userID int) ([]*models.UserSubscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserSubscription), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		userIDParam    string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "список подписок пользователя",
			userIDParam: "10",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, 10).Return([]*models.UserSubscription{
					{
						Subscription: models.Subscription{ID: 1, UserID: 10, Status: "active"},
						PlanName:     "Veg Basic",
						PlanPrice:    2400,
						PlanCategory: models.CategoryMess,
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"plan_name":"Veg Basic"`,
		},
		{
			name:        "пустой список",
			userIDParam: "11",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, 11).Return([]*models.UserSubscription{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "некорректный userId в url",
			userIDParam:    "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"failed to decode userId from url"}`,
		},
		{
			name:        "ошибка сервиса",
			userIDParam: "10",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, 10).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"could not list subscriptions"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/subscriptions/user/"+tt.userIDParam, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			// Устанавливаем URL параметр userId для chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userId", tt.userIDParam)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
