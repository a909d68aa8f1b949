package update

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wagholimess/mess-service/internal/storage"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateDay(ctx context.Context, day, breakfast, lunch, dinner string) error {
	args := m.Called(ctx, day, breakfast, lunch, dinner)
	return args.Error(0)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validRequest := Request{
		Day:       "Monday",
		Breakfast: "Misal Pav",
		Lunch:     "Thali",
		Dinner:    "Pulao",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное обновление меню",
			requestBody: validRequest,
			setupMock: func(m *MockService) {
				m.On("UpdateDay", mock.Anything, "Monday", "Misal Pav", "Thali", "Pulao").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true}`,
		},
		{
			name:        "день не найден",
			requestBody: Request{Day: "Funday", Breakfast: "a", Lunch: "b", Dinner: "c"},
			setupMock: func(m *MockService) {
				m.On("UpdateDay", mock.Anything, "Funday", "a", "b", "c").
					Return(storage.ErrMenuDayNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"menu day not found"}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
		{
			name:           "ошибка валидации",
			requestBody:    Request{Day: "Monday"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"field Breakfast is a required field, field Lunch is a required field, field Dinner is a required field"}`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: validRequest,
			setupMock: func(m *MockService) {
				m.On("UpdateDay", mock.Anything, "Monday", "Misal Pav", "Thali", "Pulao").
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"could not update menu"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/menu", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
