// Package list реализует HTTP-обработчик ленты последних вопросов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/forum-backend/internal/http/response"
	"github.com/magabrotheeeer/forum-backend/internal/lib/sl"
	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики листинга вопросов.
type Service interface {
	List(ctx context.Context) ([]*models.Question, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Последние вопросы
// @Description Возвращает последние вопросы, новые первыми.
// @Tags Questions
// @Produce  json
// @Success 200 {object} map[string]any "Список вопросов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /questions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	questions, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list questions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list questions"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"questions": questions,
		"count":     len(questions),
	}))
}
