// Package announcement содержит бизнес-логику объявлений администрации
// и публикацию событий для почтовой рассылки.
package announcement

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/forum-backend/internal/lib/sl"
	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// AnnouncementRepository описывает контракт для работы с объявлениями в базе данных.
type AnnouncementRepository interface {
	CreateAnnouncement(ctx context.Context, announcement models.Announcement) (int, error)
	ListAnnouncements(ctx context.Context) ([]*models.Announcement, error)
}

// EventPublisher отправляет событие о новом объявлении в брокер.
type EventPublisher interface {
	PublishAnnouncement(announcement models.Announcement) error
}

// Service реализует операции над объявлениями.
type Service struct {
	repo      AnnouncementRepository
	publisher EventPublisher
	log       *slog.Logger
}

func New(repo AnnouncementRepository, publisher EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// Create сохраняет объявление и публикует событие для рассылки
// подписчикам. Недоступность брокера не отменяет публикацию
// объявления: событие теряется, запись остаётся.
func (s *Service) Create(ctx context.Context, req models.DummyAnnouncement) (int, error) {
	announcement := models.Announcement{
		AuthorName:  req.AuthorName,
		Title:       req.Title,
		Description: req.Description,
	}

	id, err := s.repo.CreateAnnouncement(ctx, announcement)
	if err != nil {
		return 0, err
	}
	announcement.ID = id

	s.log.Info("created new announcement", slog.Int("id", id))

	if err := s.publisher.PublishAnnouncement(announcement); err != nil {
		s.log.Error("failed to publish announcement event", sl.Err(err))
	}

	return id, nil
}

// List возвращает все объявления, новые первыми.
func (s *Service) List(ctx context.Context) ([]*models.Announcement, error) {
	return s.repo.ListAnnouncements(ctx)
}
