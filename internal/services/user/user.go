// Package user содержит административные операции над пользователями.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	GetUserByUID(ctx context.Context, uid string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	PromoteToAdmin(ctx context.Context, uid string) (int64, error)
}

// Service реализует операции над пользователями.
type Service struct {
	repo UserRepository
	log  *slog.Logger
}

func New(repo UserRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// List возвращает страницу пользователей форума.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.repo.ListUsers(ctx, limit, offset)
}

// Promote выдаёт пользователю роль admin. Повторное повышение
// отклоняется, чтобы клиент узнал об уже выданной роли.
func (s *Service) Promote(ctx context.Context, uid string) error {
	user, err := s.repo.GetUserByUID(ctx, uid)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return models.ErrUserNotFound
	}
	if user.Role == models.RoleAdmin {
		return models.ErrAlreadyAdmin
	}

	count, err := s.repo.PromoteToAdmin(ctx, uid)
	if err != nil {
		return err
	}
	if count == 0 {
		return models.ErrUserNotFound
	}

	s.log.Info("promoted user to admin", slog.String("uid", uid))

	return nil
}

// IsAdmin сообщает, имеет ли пользователь роль admin.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, models.ErrUserNotFound
	}
	return user.Role == models.RoleAdmin, nil
}
