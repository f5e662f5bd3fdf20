// Package question содержит бизнес-логику вопросов и ответов на них.
package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// DefaultListLimit ограничивает ленту последних вопросов.
const DefaultListLimit = 10

// QuestionRepository описывает контракт для работы с вопросами в базе данных.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question models.Question) (int, error)
	GetQuestion(ctx context.Context, id int) (*models.Question, error)
	ListQuestions(ctx context.Context, limit int) ([]*models.Question, error)
	CreateAnswer(ctx context.Context, answer models.Answer) (int, error)
	ListAnswersByQuestion(ctx context.Context, questionID int) ([]*models.Answer, error)
}

// Service реализует операции над вопросами и ответами.
type Service struct {
	repo QuestionRepository
	log  *slog.Logger
}

func New(repo QuestionRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет новый вопрос.
func (s *Service) Create(ctx context.Context, req models.DummyQuestion) (int, error) {
	question := models.Question{
		AuthorEmail: req.AuthorEmail,
		Title:       req.Title,
		Description: req.Description,
	}
	id, err := s.repo.CreateQuestion(ctx, question)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new question", slog.Int("id", id))
	return id, nil
}

// List возвращает последние вопросы, новые первыми.
func (s *Service) List(ctx context.Context) ([]*models.Question, error) {
	return s.repo.ListQuestions(ctx, DefaultListLimit)
}

// Answer сохраняет ответ на существующий вопрос.
func (s *Service) Answer(ctx context.Context, questionID int, req models.DummyAnswer) (int, error) {
	question, err := s.repo.GetQuestion(ctx, questionID)
	if err != nil {
		return 0, fmt.Errorf("failed to find question: %w", err)
	}
	if question == nil {
		return 0, models.ErrQuestionNotFound
	}

	answer := models.Answer{
		QuestionID:  questionID,
		AuthorEmail: req.AuthorEmail,
		Text:        req.Text,
	}
	id, err := s.repo.CreateAnswer(ctx, answer)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new answer", slog.Int("id", id), slog.Int("question_id", questionID))
	return id, nil
}

// ListAnswers возвращает ответы на вопрос в порядке их появления.
// Для неизвестного вопроса возвращает ErrQuestionNotFound, а не пустой
// список, чтобы клиент мог отличить эти случаи.
func (s *Service) ListAnswers(ctx context.Context, questionID int) ([]*models.Answer, error) {
	question, err := s.repo.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find question: %w", err)
	}
	if question == nil {
		return nil, models.ErrQuestionNotFound
	}
	return s.repo.ListAnswersByQuestion(ctx, questionID)
}
