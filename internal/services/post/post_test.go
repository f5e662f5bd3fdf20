package post

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/magabrotheeeer/forum-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreatePost(ctx context.Context, post models.Post) (int, error) {
	args := m.Called(ctx, post)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) CountPostsByAuthor(ctx context.Context, email string) (int, error) {
	args := m.Called(ctx, email)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ReadPost(ctx context.Context, id int) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}
func (m *RepoMock) DeletePost(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) IncrementVote(ctx context.Context, id int, voteType string) (int64, error) {
	args := m.Called(ctx, id, voteType)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) ListPosts(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

type UsersMock struct{ mock.Mock }

func (m *UsersMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
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

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreate_Quota(t *testing.T) {
	req := models.DummyPost{
		AuthorEmail: "user@example.com",
		Title:       "title",
		Description: "text",
	}

	tests := []struct {
		name      string
		user      *models.User
		count     int
		wantCall  bool
		wantLimit int
	}{
		{
			name:     "автор с членством публикует сверх лимита",
			user:     &models.User{Email: req.AuthorEmail, Membership: models.MembershipSubscribed, MaxPosts: 10},
			wantCall: true,
		},
		{
			name:     "автор без членства в пределах лимита",
			user:     &models.User{Email: req.AuthorEmail, Membership: models.MembershipFree, MaxPosts: 5},
			count:    4,
			wantCall: true,
		},
		{
			name:      "автор без членства на лимите",
			user:      &models.User{Email: req.AuthorEmail, Membership: models.MembershipFree, MaxPosts: 5},
			count:     5,
			wantLimit: 5,
		},
		{
			name:      "неизвестный автор получает лимит по умолчанию",
			user:      nil,
			count:     5,
			wantLimit: models.DefaultMaxPosts,
		},
		{
			name:     "неизвестный автор в пределах лимита по умолчанию",
			user:     nil,
			count:    0,
			wantCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			users := new(UsersMock)
			cache := new(CacheMock)
			svc := New(repo, users, cache, discardLogger())

			users.On("GetUserByEmail", mock.Anything, req.AuthorEmail).Return(tt.user, nil)
			repo.On("CountPostsByAuthor", mock.Anything, req.AuthorEmail).Return(tt.count, nil)
			if tt.wantCall {
				repo.On("CreatePost", mock.Anything, mock.AnythingOfType("models.Post")).Return(42, nil)
			}

			id, err := svc.Create(context.Background(), req)

			if tt.wantCall {
				assert.NoError(t, err)
				assert.Equal(t, 42, id)
				repo.AssertCalled(t, "CreatePost", mock.Anything, mock.AnythingOfType("models.Post"))
			} else {
				var quotaErr *models.QuotaExceededError
				assert.ErrorAs(t, err, &quotaErr)
				assert.Equal(t, tt.wantLimit, quotaErr.Limit)
				repo.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestVote_MapsUnknownTypeToDownvote(t *testing.T) {
	tests := []struct {
		name       string
		voteType   string
		wantColumn string
	}{
		{"голос за", "upvote", "upvote"},
		{"голос против", "downvote", "downvote"},
		{"неизвестный тип считается голосом против", "like", "downvote"},
		{"пустой тип считается голосом против", "", "downvote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			svc := New(repo, new(UsersMock), cache, discardLogger())

			repo.On("IncrementVote", mock.Anything, 7, tt.wantColumn).Return(int64(1), nil)
			cache.On("Invalidate", "post:7").Return(nil)

			err := svc.Vote(context.Background(), 7, tt.voteType)

			assert.NoError(t, err)
			repo.AssertCalled(t, "IncrementVote", mock.Anything, 7, tt.wantColumn)
		})
	}
}

func TestVote_UnknownPost(t *testing.T) {
	repo := new(RepoMock)
	svc := New(repo, new(UsersMock), new(CacheMock), discardLogger())

	repo.On("IncrementVote", mock.Anything, 99, "upvote").Return(int64(0), nil)

	err := svc.Vote(context.Background(), 99, "upvote")

	assert.ErrorIs(t, err, models.ErrPostNotFound)
}

func TestRead_CacheHit(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := New(repo, new(UsersMock), cache, discardLogger())

	cache.On("Get", "post:3", mock.Anything).Return(true, nil)

	_, err := svc.Read(context.Background(), 3)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "ReadPost", mock.Anything, mock.Anything)
}

func TestRead_UnknownPost(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := New(repo, new(UsersMock), cache, discardLogger())

	cache.On("Get", "post:3", mock.Anything).Return(false, nil)
	repo.On("ReadPost", mock.Anything, 3).Return(nil, nil)

	_, err := svc.Read(context.Background(), 3)

	assert.ErrorIs(t, err, models.ErrPostNotFound)
}

func TestRemove_UnknownPost(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := New(repo, new(UsersMock), cache, discardLogger())

	cache.On("Invalidate", "post:5").Return(nil)
	repo.On("DeletePost", mock.Anything, 5).Return(int64(0), nil)

	err := svc.Remove(context.Background(), 5)

	assert.ErrorIs(t, err, models.ErrPostNotFound)
}

func TestCreate_RepoError(t *testing.T) {
	repo := new(RepoMock)
	users := new(UsersMock)
	svc := New(repo, users, new(CacheMock), discardLogger())

	users.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("CountPostsByAuthor", mock.Anything, mock.Anything).Return(0, nil)
	repo.On("CreatePost", mock.Anything, mock.Anything).Return(0, errors.New("db down"))

	_, err := svc.Create(context.Background(), models.DummyPost{AuthorEmail: "a@b.c", Title: "t", Description: "d"})

	assert.Error(t, err)
}
