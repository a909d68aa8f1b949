package middlewarectx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wagholimess/mess-service/internal/http/middlewarectx"
	jwtmaker "github.com/wagholimess/mess-service/internal/lib/jwt"
	"github.com/wagholimess/mess-service/internal/models"

	"io"
	"log/slog"
)

// Mock for TokenParser
type TokenParserMock struct {
	mock.Mock
}

func (m *TokenParserMock) ParseToken(tokenStr string) (*jwtmaker.CustomClaims, error) {
	args := m.Called(tokenStr)
	claims, _ := args.Get(0).(*jwtmaker.CustomClaims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		mockClaims     *jwtmaker.CustomClaims
		mockErr        error
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "token validation error",
			authHeader:     "Bearer badtoken",
			mockErr:        errors.New("token is expired"),
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:       "valid token puts phone and role into context",
			authHeader: "Bearer goodtoken",
			mockClaims: &jwtmaker.CustomClaims{
				Phone: "9822001122",
				Role:  models.RoleUser,
			},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parserMock := new(TokenParserMock)
			if tt.mockClaims != nil || tt.mockErr != nil {
				token := "goodtoken"
				if tt.mockErr != nil {
					token = "badtoken"
				}
				parserMock.On("ParseToken", token).Return(tt.mockClaims, tt.mockErr).Once()
			}

			handlerCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				assert.Equal(t, "9822001122", r.Context().Value(middlewarectx.Phone))
				assert.Equal(t, models.RoleUser, r.Context().Value(middlewarectx.Role))
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewarectx.JWTMiddleware(parserMock, newNoopLogger())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)

			parserMock.AssertExpectations(t)
		})
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		role           any
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "admin role passes",
			role:           models.RoleAdmin,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			name:           "user role is rejected",
			role:           models.RoleUser,
			wantStatusCode: http.StatusForbidden,
			wantCalled:     false,
		},
		{
			name:           "missing role is rejected",
			role:           nil,
			wantStatusCode: http.StatusForbidden,
			wantCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewarectx.AdminOnlyMiddleware(newNoopLogger())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tt.role != nil {
				ctx := context.WithValue(req.Context(), middlewarectx.Role, tt.role)
				req = req.WithContext(ctx)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
		})
	}
}
