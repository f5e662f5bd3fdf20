package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/forum-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummyPost) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		email          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешное создание поста",
			body:  `{"title":"First post","description":"hello","tags":["go"]}`,
			email: "user@example.com",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(req models.DummyPost) bool {
					return req.AuthorEmail == "user@example.com" && req.Title == "First post"
				})).Return(7, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"last_added_id":7`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"title":`,
			email:          "user@example.com",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "пустой заголовок",
			body:           `{"description":"hello"}`,
			email:          "user@example.com",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Title is a required field`,
		},
		{
			name:           "нет почты в контексте",
			body:           `{"title":"First post","description":"hello"}`,
			email:          "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `unauthorized`,
		},
		{
			name:  "превышена квота",
			body:  `{"title":"Sixth post","description":"hello"}`,
			email: "user@example.com",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(0, &models.QuotaExceededError{Limit: 5})
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `you have reached your post limit of 5`,
		},
		{
			name:  "ошибка сервиса",
			body:  `{"title":"First post","description":"hello"}`,
			email: "user@example.com",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not create post`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(tt.body))
			if tt.email != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserEmail, tt.email))
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
