// Package post содержит бизнес-логику постов: квоту на публикации,
// учёт голосов и кеширование чтений.
package post

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// PostRepository описывает контракт для работы с постами в базе данных.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (int, error)
	CountPostsByAuthor(ctx context.Context, email string) (int, error)
	ReadPost(ctx context.Context, id int) (*models.Post, error)
	DeletePost(ctx context.Context, id int) (int64, error)
	IncrementVote(ctx context.Context, id int, voteType string) (int64, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]*models.Post, error)
}

// UserRepository нужен квоте, чтобы узнать членство и лимит автора.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует операции над постами.
type Service struct {
	repo  PostRepository
	users UserRepository
	cache Cache
	log   *slog.Logger
}

func New(repo PostRepository, users UserRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		users: users,
		cache: cache,
		log:   log,
	}
}

// Create проверяет квоту автора и сохраняет пост.
// Автор с членством публикует без ограничений. Для остальных действует
// лимит из записи пользователя, а если записи нет — лимит по умолчанию.
// Проверка счётчика и вставка не атомарны: параллельные запросы одного
// автора могут превысить лимит на единицы.
func (s *Service) Create(ctx context.Context, req models.DummyPost) (int, error) {
	user, err := s.users.GetUserByEmail(ctx, req.AuthorEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to load author: %w", err)
	}

	subscribed := user != nil && user.Membership == models.MembershipSubscribed
	if !subscribed {
		limit := models.DefaultMaxPosts
		if user != nil && user.MaxPosts > 0 {
			limit = user.MaxPosts
		}
		count, err := s.repo.CountPostsByAuthor(ctx, req.AuthorEmail)
		if err != nil {
			return 0, fmt.Errorf("failed to count posts: %w", err)
		}
		if count >= limit {
			return 0, &models.QuotaExceededError{Limit: limit}
		}
	}

	post := models.Post{
		AuthorEmail: req.AuthorEmail,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	}

	id, err := s.repo.CreatePost(ctx, post)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new post", slog.Int("id", id), slog.String("author", req.AuthorEmail))

	return id, nil
}

// CountByAuthor возвращает число постов автора. Используется клиентом,
// чтобы показать оставшуюся квоту.
func (s *Service) CountByAuthor(ctx context.Context, email string) (int, error) {
	return s.repo.CountPostsByAuthor(ctx, email)
}

// Read возвращает пост по идентификатору, сначала проверяя кеш.
func (s *Service) Read(ctx context.Context, id int) (*models.Post, error) {
	var result *models.Post
	cacheKey := fmt.Sprintf("post:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, models.ErrPostNotFound
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Remove удаляет пост и сбрасывает его кеш.
func (s *Service) Remove(ctx context.Context, id int) error {
	cacheKey := fmt.Sprintf("post:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.DeletePost(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return models.ErrPostNotFound
	}
	return nil
}

// Vote увеличивает счётчик голосов поста. Значение, отличное от
// "upvote", засчитывается как голос против. Разница голосов не
// пересчитывается здесь: её вычисляет чтение.
func (s *Service) Vote(ctx context.Context, id int, voteType string) error {
	if voteType != models.VoteUp {
		voteType = models.VoteDown
	}

	count, err := s.repo.IncrementVote(ctx, id, voteType)
	if err != nil {
		return err
	}
	if count == 0 {
		return models.ErrPostNotFound
	}

	cacheKey := fmt.Sprintf("post:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	s.log.Info("registered vote", slog.Int("id", id), slog.String("vote", voteType))

	return nil
}

// List возвращает посты по фильтру. Порядок устойчив: при равенстве
// ключа сортировки новые посты идут первыми.
func (s *Service) List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	return s.repo.ListPosts(ctx, filter)
}
