package auth

import (
	"context"
	"testing"
	"time"

	"github.com/magabrotheeeer/forum-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/forum-backend/internal/lib/password"
	"github.com/magabrotheeeer/forum-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UsersMock struct{ mock.Mock }

func (m *UsersMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}
func (m *UsersMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestRegister_DefaultsForNewUser(t *testing.T) {
	users := new(UsersMock)
	svc := New(users, jwt.NewJWTMaker("secret", time.Hour))

	var saved models.User
	users.On("RegisterUser", mock.Anything, mock.AnythingOfType("models.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(models.User)
		}).
		Return("uid-1", nil)

	uid, err := svc.Register(context.Background(), "user@example.com", "user", "qwerty123")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
	assert.Equal(t, models.RoleMember, saved.Role)
	assert.Equal(t, models.MembershipFree, saved.Membership)
	assert.Equal(t, models.DefaultMaxPosts, saved.MaxPosts)
	assert.NoError(t, password.CompareHash(saved.PasswordHash, "qwerty123"))
}

func TestLogin(t *testing.T) {
	hash, err := password.GetHash("qwerty123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		user     *models.User
		password string
		wantErr  error
	}{
		{
			name:     "успешный вход",
			user:     &models.User{Email: "user@example.com", PasswordHash: hash, Role: models.RoleMember},
			password: "qwerty123",
		},
		{
			name:     "неверный пароль",
			user:     &models.User{Email: "user@example.com", PasswordHash: hash, Role: models.RoleMember},
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "пользователь не найден",
			user:     nil,
			password: "qwerty123",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(UsersMock)
			svc := New(users, jwt.NewJWTMaker("secret", time.Hour))
			users.On("GetUserByEmail", mock.Anything, "user@example.com").Return(tt.user, nil)

			token, role, err := svc.Login(context.Background(), "user@example.com", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.RoleMember, role)

			email, gotRole, err := svc.ValidateToken(context.Background(), token)
			require.NoError(t, err)
			assert.Equal(t, "user@example.com", email)
			assert.Equal(t, models.RoleMember, gotRole)
		})
	}
}
