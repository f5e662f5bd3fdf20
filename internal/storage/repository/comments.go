package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// CreateComment вставляет новый комментарий и возвращает его ID.
func (s *Storage) CreateComment(ctx context.Context, comment models.Comment) (int, error) {
	const op = "storage.CreateComment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO comments (post_id, author_email, text)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		comment.PostID, comment.AuthorEmail, comment.Text).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetComment возвращает комментарий по ID или (nil, nil), если он не найден.
func (s *Storage) GetComment(ctx context.Context, id int) (*models.Comment, error) {
	const op = "storage.GetComment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, post_id, author_email, text, created_at
			  FROM comments WHERE id = $1`
	var c models.Comment
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&c.ID, &c.PostID, &c.AuthorEmail, &c.Text, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// ListCommentsByPost возвращает комментарии поста от новых к старым.
func (s *Storage) ListCommentsByPost(ctx context.Context, postID int) ([]*models.Comment, error) {
	const op = "storage.ListCommentsByPost"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, post_id, author_email, text, created_at
			  FROM comments
			  WHERE post_id = $1
			  ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Comment
	for rows.Next() {
		var c models.Comment
		if err = rows.Scan(&c.ID, &c.PostID, &c.AuthorEmail, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListAllComments возвращает все комментарии с пагинацией.
func (s *Storage) ListAllComments(ctx context.Context, limit, offset int) ([]*models.Comment, error) {
	const op = "storage.ListAllComments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, post_id, author_email, text, created_at
			  FROM comments
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Comment
	for rows.Next() {
		var c models.Comment
		if err = rows.Scan(&c.ID, &c.PostID, &c.AuthorEmail, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateReportedComment сохраняет копию комментария с жалобой и возвращает ID жалобы.
func (s *Storage) CreateReportedComment(ctx context.Context, reported models.ReportedComment) (int, error) {
	const op = "storage.CreateReportedComment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO reported_comments (comment_id, author_email, text, feedback)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		reported.CommentID, reported.AuthorEmail, reported.Text, reported.Feedback).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}
