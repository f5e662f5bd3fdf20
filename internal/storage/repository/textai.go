package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// CreatePromptRecord сохраняет запись истории обращений к текстовому AI.
func (s *Storage) CreatePromptRecord(ctx context.Context, record models.PromptRecord) (int, error) {
	const op = "storage.CreatePromptRecord"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO prompt_records (author_email, prompt, answer)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		record.AuthorEmail, record.Prompt, record.Answer).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListPromptRecordsByAuthor возвращает историю обращений автора
// от новых к старым.
func (s *Storage) ListPromptRecordsByAuthor(ctx context.Context, email string, limit, offset int) ([]*models.PromptRecord, error) {
	const op = "storage.ListPromptRecordsByAuthor"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, author_email, prompt, answer, created_at
			  FROM prompt_records
			  WHERE author_email = $1
			  ORDER BY created_at DESC, id DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, email, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PromptRecord
	for rows.Next() {
		var r models.PromptRecord
		if err = rows.Scan(&r.ID, &r.AuthorEmail, &r.Prompt, &r.Answer, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
