// Package textai содержит логику обращения к текстовой AI-модели
// и хранения истории запросов.
package textai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// Generator описывает клиента текстовой модели.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// PromptRepository описывает контракт для хранения истории запросов.
type PromptRepository interface {
	CreatePromptRecord(ctx context.Context, record models.PromptRecord) (int, error)
	ListPromptRecordsByAuthor(ctx context.Context, email string, limit, offset int) ([]*models.PromptRecord, error)
}

// Service реализует прокси к текстовой модели.
type Service struct {
	generator Generator
	repo      PromptRepository
	log       *slog.Logger
}

func New(generator Generator, repo PromptRepository, log *slog.Logger) *Service {
	return &Service{
		generator: generator,
		repo:      repo,
		log:       log,
	}
}

// Generate отправляет запрос модели и возвращает текст ответа.
// История здесь не сохраняется: клиент сам решает, что сохранить.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	answer, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	s.log.Info("generated ai answer", slog.Int("prompt_len", len(prompt)))
	return answer, nil
}

// SaveRecord сохраняет пару запрос-ответ в историю автора.
func (s *Service) SaveRecord(ctx context.Context, req models.DummyPromptRecord) (int, error) {
	record := models.PromptRecord{
		AuthorEmail: req.AuthorEmail,
		Prompt:      req.Prompt,
		Answer:      req.Answer,
	}
	return s.repo.CreatePromptRecord(ctx, record)
}

// History возвращает страницу истории запросов автора.
func (s *Service) History(ctx context.Context, email string, limit, offset int) ([]*models.PromptRecord, error) {
	return s.repo.ListPromptRecordsByAuthor(ctx, email, limit, offset)
}
