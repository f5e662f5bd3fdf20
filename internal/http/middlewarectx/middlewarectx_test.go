package middlewarectx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type AuthMock struct{ mock.Mock }

func (m *AuthMock) ValidateToken(ctx context.Context, token string) (string, string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.String(1), args.Error(2)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setupMock  func(m *AuthMock)
		wantStatus int
		wantEmail  string
	}{
		{
			name:   "валидный токен",
			header: "Bearer good-token",
			setupMock: func(m *AuthMock) {
				m.On("ValidateToken", mock.Anything, "good-token").
					Return("user@example.com", "member", nil)
			},
			wantStatus: http.StatusOK,
			wantEmail:  "user@example.com",
		},
		{
			name:       "нет заголовка",
			header:     "",
			setupMock:  func(_ *AuthMock) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "заголовок без Bearer",
			header:     "Token abc",
			setupMock:  func(_ *AuthMock) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "просроченный токен",
			header: "Bearer stale-token",
			setupMock: func(m *AuthMock) {
				m.On("ValidateToken", mock.Anything, "stale-token").
					Return("", "", errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(AuthMock)
			tt.setupMock(auth)

			var gotEmail string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotEmail, _ = r.Context().Value(UserEmail).(string)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			JWTMiddleware(auth, discardLogger())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantEmail != "" {
				assert.Equal(t, tt.wantEmail, gotEmail)
			}
		})
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AdminOnlyMiddleware(discardLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), Role, "admin"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), Role, "member"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
