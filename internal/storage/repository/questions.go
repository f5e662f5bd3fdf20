package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// CreateQuestion вставляет новый вопрос и возвращает его ID.
func (s *Storage) CreateQuestion(ctx context.Context, question models.Question) (int, error) {
	const op = "storage.CreateQuestion"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO questions (author_email, title, description)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		question.AuthorEmail, question.Title, question.Description).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetQuestion возвращает вопрос по ID или (nil, nil), если он не найден.
func (s *Storage) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	const op = "storage.GetQuestion"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, author_email, title, description, created_at
			  FROM questions WHERE id = $1`
	var q models.Question
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&q.ID, &q.AuthorEmail, &q.Title, &q.Description, &q.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &q, nil
}

// ListQuestions возвращает последние вопросы от новых к старым вместе
// с количеством ответов на каждый.
func (s *Storage) ListQuestions(ctx context.Context, limit int) ([]*models.Question, error) {
	const op = "storage.ListQuestions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT q.id, q.author_email, q.title, q.description,
			      COUNT(a.id) AS answer_count, q.created_at
			  FROM questions q
			  LEFT JOIN answers a ON a.question_id = q.id
			  GROUP BY q.id
			  ORDER BY q.created_at DESC, q.id DESC
			  LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Question
	for rows.Next() {
		var q models.Question
		if err = rows.Scan(&q.ID, &q.AuthorEmail, &q.Title, &q.Description,
			&q.AnswerCount, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateAnswer вставляет ответ на вопрос и возвращает его ID.
func (s *Storage) CreateAnswer(ctx context.Context, answer models.Answer) (int, error) {
	const op = "storage.CreateAnswer"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO answers (question_id, author_email, text)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		answer.QuestionID, answer.AuthorEmail, answer.Text).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListAnswersByQuestion возвращает ответы на вопрос от старых к новым,
// в порядке их появления.
func (s *Storage) ListAnswersByQuestion(ctx context.Context, questionID int) ([]*models.Answer, error) {
	const op = "storage.ListAnswersByQuestion"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, question_id, author_email, text, created_at
			  FROM answers
			  WHERE question_id = $1
			  ORDER BY created_at ASC, id ASC`
	rows, err := s.DB.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Answer
	for rows.Next() {
		var a models.Answer
		if err = rows.Scan(&a.ID, &a.QuestionID, &a.AuthorEmail, &a.Text, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
