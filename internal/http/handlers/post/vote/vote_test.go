package vote

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// MockService реализует интерфейс vote.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Vote(ctx context.Context, id int, voteType string) error {
	args := m.Called(ctx, id, voteType)
	return args.Error(0)
}

func TestVoteHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "голос за",
			id:   "5",
			body: `{"vote":"upvote"}`,
			setupMock: func(m *MockService) {
				m.On("Vote", mock.Anything, 5, "upvote").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":5`,
		},
		{
			name: "произвольное значение передается сервису",
			id:   "5",
			body: `{"vote":"like"}`,
			setupMock: func(m *MockService) {
				m.On("Vote", mock.Anything, 5, "like").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "некорректный id",
			id:             "abc",
			body:           `{"vote":"upvote"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid post id`,
		},
		{
			name:           "пустой vote",
			id:             "5",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Vote is a required field`,
		},
		{
			name: "пост не найден",
			id:   "99",
			body: `{"vote":"upvote"}`,
			setupMock: func(m *MockService) {
				m.On("Vote", mock.Anything, 99, "upvote").Return(models.ErrPostNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `post not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/posts/"+tt.id+"/vote", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
