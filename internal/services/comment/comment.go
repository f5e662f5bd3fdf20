// Package comment содержит бизнес-логику комментариев и жалоб на них.
package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// CommentRepository описывает контракт для работы с комментариями в базе данных.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (int, error)
	GetComment(ctx context.Context, id int) (*models.Comment, error)
	ListCommentsByPost(ctx context.Context, postID int) ([]*models.Comment, error)
	ListAllComments(ctx context.Context, limit, offset int) ([]*models.Comment, error)
	CreateReportedComment(ctx context.Context, reported models.ReportedComment) (int, error)
}

// Service реализует операции над комментариями.
type Service struct {
	repo CommentRepository
	log  *slog.Logger
}

func New(repo CommentRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет комментарий к посту. Существование поста не
// проверяется: комментарий к удалённому посту просто не попадёт
// в выдачу.
func (s *Service) Create(ctx context.Context, postID int, req models.DummyComment) (int, error) {
	comment := models.Comment{
		PostID:      postID,
		AuthorEmail: req.AuthorEmail,
		Text:        req.Text,
	}
	id, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new comment", slog.Int("id", id), slog.Int("post_id", postID))
	return id, nil
}

// ListByPost возвращает комментарии поста, новые первыми.
func (s *Service) ListByPost(ctx context.Context, postID int) ([]*models.Comment, error) {
	return s.repo.ListCommentsByPost(ctx, postID)
}

// ListAll возвращает страницу всех комментариев форума.
func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]*models.Comment, error) {
	return s.repo.ListAllComments(ctx, limit, offset)
}

// Report сохраняет жалобу на комментарий вместе с копией его текста,
// чтобы правка или удаление комментария не стёрли улики.
func (s *Service) Report(ctx context.Context, commentID int, feedback string) (int, error) {
	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return 0, fmt.Errorf("failed to find comment: %w", err)
	}
	if comment == nil {
		return 0, models.ErrCommentNotFound
	}

	reported := models.ReportedComment{
		CommentID:   comment.ID,
		AuthorEmail: comment.AuthorEmail,
		Text:        comment.Text,
		Feedback:    feedback,
	}
	id, err := s.repo.CreateReportedComment(ctx, reported)
	if err != nil {
		return 0, err
	}
	s.log.Info("reported comment", slog.Int("comment_id", commentID))
	return id, nil
}
