package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// CreatePost вставляет новый пост и возвращает его ID.
// Проверка квоты автора выполняется на уровне сервиса до вставки.
func (s *Storage) CreatePost(ctx context.Context, post models.Post) (int, error) {
	const op = "storage.CreatePost"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tags, err := json.Marshal(post.Tags)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO posts (author_email, title, description, tags)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		post.AuthorEmail, post.Title, post.Description, tags).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// CountPostsByAuthor возвращает количество постов автора.
func (s *Storage) CountPostsByAuthor(ctx context.Context, email string) (int, error) {
	const op = "storage.CountPostsByAuthor"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*) FROM posts WHERE author_email = $1`
	var count int
	if err := s.DB.QueryRowContext(ctx, query, email).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// ReadPost возвращает пост по ID вместе с вычисленной разницей голосов.
// Если пост не найден, возвращает (nil, nil).
func (s *Storage) ReadPost(ctx context.Context, id int) (*models.Post, error) {
	const op = "storage.ReadPost"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, author_email, title, description, tags,
			      COALESCE(upvote, 0), COALESCE(downvote, 0),
			      COALESCE(upvote, 0) - COALESCE(downvote, 0),
			      created_at
			  FROM posts WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return post, nil
}

// DeletePost удаляет пост по ID и возвращает количество удалённых строк.
func (s *Storage) DeletePost(ctx context.Context, id int) (int64, error) {
	const op = "storage.DeletePost"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM posts WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// IncrementVote прибавляет единицу к счётчику голосов поста одним атомарным
// обновлением. voteType models.VoteUp увеличивает upvote, любое другое
// значение увеличивает downvote. Возвращает количество изменённых строк.
func (s *Storage) IncrementVote(ctx context.Context, id int, voteType string) (int64, error) {
	const op = "storage.IncrementVote"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	column := "downvote"
	if voteType == models.VoteUp {
		column = "upvote"
	}

	query := fmt.Sprintf(`UPDATE posts SET %s = COALESCE(%s, 0) + 1 WHERE id = $1`, column, column)
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// ListPosts возвращает посты по фильтру. Разница голосов вычисляется в запросе
// с подстановкой нуля вместо отсутствующих счётчиков. Сортировка либо по
// разнице голосов, либо по дате создания; вторичный ключ id делает порядок
// детерминированным.
func (s *Storage) ListPosts(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	const op = "storage.ListPosts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var conditions []string
	var args []any

	if filter.AuthorEmail != "" {
		args = append(args, filter.AuthorEmail)
		conditions = append(conditions, fmt.Sprintf("author_email = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if len(filter.Tags) > 0 {
		tags, err := json.Marshal(filter.Tags)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		args = append(args, tags)
		conditions = append(conditions, fmt.Sprintf("tags @> $%d::jsonb", len(args)))
	}

	query := `SELECT id, author_email, title, description, tags,
			      COALESCE(upvote, 0), COALESCE(downvote, 0),
			      COALESCE(upvote, 0) - COALESCE(downvote, 0) AS vote_difference,
			      created_at
			  FROM posts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	if filter.SortByPopularity {
		query += " ORDER BY vote_difference DESC, id DESC"
	} else {
		query += " ORDER BY created_at DESC, id DESC"
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// scanner объединяет *sql.Row и *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (*models.Post, error) {
	var post models.Post
	var tags []byte
	if err := row.Scan(&post.ID, &post.AuthorEmail, &post.Title, &post.Description,
		&tags, &post.Upvote, &post.Downvote, &post.VoteDifference, &post.CreatedAt); err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &post.Tags); err != nil {
			return nil, err
		}
	}
	return &post, nil
}
