package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// CreateAnnouncement вставляет новое объявление и возвращает его ID.
func (s *Storage) CreateAnnouncement(ctx context.Context, announcement models.Announcement) (int, error) {
	const op = "storage.CreateAnnouncement"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO announcements (author_name, title, description)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		announcement.AuthorName, announcement.Title, announcement.Description).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListAnnouncements возвращает объявления от новых к старым.
func (s *Storage) ListAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	const op = "storage.ListAnnouncements"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, author_name, title, description, created_at
			  FROM announcements
			  ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err = rows.Scan(&a.ID, &a.AuthorName, &a.Title, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
