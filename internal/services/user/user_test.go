package user

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/magabrotheeeer/forum-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}
func (m *RepoMock) GetUserByUID(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) PromoteToAdmin(ctx context.Context, uid string) (int64, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).(int64), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPromote(t *testing.T) {
	tests := []struct {
		name    string
		user    *models.User
		wantErr error
	}{
		{
			name: "успешное повышение",
			user: &models.User{UID: "uid-1", Role: models.RoleMember},
		},
		{
			name:    "пользователь не найден",
			user:    nil,
			wantErr: models.ErrUserNotFound,
		},
		{
			name:    "пользователь уже админ",
			user:    &models.User{UID: "uid-1", Role: models.RoleAdmin},
			wantErr: models.ErrAlreadyAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := New(repo, discardLogger())

			repo.On("GetUserByUID", mock.Anything, "uid-1").Return(tt.user, nil)
			repo.On("PromoteToAdmin", mock.Anything, "uid-1").Return(int64(1), nil)

			err := svc.Promote(context.Background(), "uid-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "PromoteToAdmin", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			repo.AssertCalled(t, "PromoteToAdmin", mock.Anything, "uid-1")
		})
	}
}

func TestIsAdmin(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, discardLogger())

	repo.On("GetUserByEmail", mock.Anything, "admin@example.com").
		Return(&models.User{Email: "admin@example.com", Role: models.RoleAdmin}, nil)
	repo.On("GetUserByEmail", mock.Anything, "user@example.com").
		Return(&models.User{Email: "user@example.com", Role: models.RoleMember}, nil)
	repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	isAdmin, err := svc.IsAdmin(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	_, err = svc.IsAdmin(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
