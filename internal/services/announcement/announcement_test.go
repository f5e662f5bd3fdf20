package announcement

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/magabrotheeeer/forum-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateAnnouncement(ctx context.Context, announcement models.Announcement) (int, error) {
	args := m.Called(ctx, announcement)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Announcement), args.Error(1)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) PublishAnnouncement(announcement models.Announcement) error {
	args := m.Called(announcement)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreate_PublishesEvent(t *testing.T) {
	repo := new(RepoMock)
	publisher := new(PublisherMock)
	svc := New(repo, publisher, discardLogger())

	repo.On("CreateAnnouncement", mock.Anything, mock.AnythingOfType("models.Announcement")).Return(11, nil)

	var published models.Announcement
	publisher.On("PublishAnnouncement", mock.AnythingOfType("models.Announcement")).
		Run(func(args mock.Arguments) {
			published = args.Get(0).(models.Announcement)
		}).
		Return(nil)

	id, err := svc.Create(context.Background(), models.DummyAnnouncement{
		AuthorName:  "admin",
		Title:       "Maintenance",
		Description: "Downtime tonight",
	})

	require.NoError(t, err)
	assert.Equal(t, 11, id)
	assert.Equal(t, 11, published.ID)
	assert.Equal(t, "Maintenance", published.Title)
}

func TestCreate_BrokerFailureIsNotFatal(t *testing.T) {
	repo := new(RepoMock)
	publisher := new(PublisherMock)
	svc := New(repo, publisher, discardLogger())

	repo.On("CreateAnnouncement", mock.Anything, mock.Anything).Return(12, nil)
	publisher.On("PublishAnnouncement", mock.Anything).Return(errors.New("broker down"))

	id, err := svc.Create(context.Background(), models.DummyAnnouncement{
		AuthorName:  "admin",
		Title:       "Maintenance",
		Description: "Downtime tonight",
	})

	assert.NoError(t, err)
	assert.Equal(t, 12, id)
}

func TestCreate_RepoFailureSkipsPublish(t *testing.T) {
	repo := new(RepoMock)
	publisher := new(PublisherMock)
	svc := New(repo, publisher, discardLogger())

	repo.On("CreateAnnouncement", mock.Anything, mock.Anything).Return(0, errors.New("db down"))

	_, err := svc.Create(context.Background(), models.DummyAnnouncement{
		AuthorName:  "admin",
		Title:       "Maintenance",
		Description: "Downtime tonight",
	})

	assert.Error(t, err)
	publisher.AssertNotCalled(t, "PublishAnnouncement", mock.Anything)
}
