// Package list реализует HTTP-обработчик листинга ответов на вопрос.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/forum-backend/internal/http/response"
	"github.com/magabrotheeeer/forum-backend/internal/lib/sl"
	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики листинга ответов.
type Service interface {
	ListAnswers(ctx context.Context, questionID int) ([]*models.Answer, error)
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
// @Summary Ответы на вопрос
// @Description Возвращает ответы на вопрос в порядке их появления.
// @Tags Questions
// @Produce  json
// @Param id path int true "ID вопроса"
// @Success 200 {object} map[string]any "Список ответов"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Вопрос не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /questions/{id}/answers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.answer.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	questionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid question id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid question id"))
		return
	}

	answers, err := h.service.ListAnswers(r.Context(), questionID)
	if err != nil {
		if errors.Is(err, models.ErrQuestionNotFound) {
			log.Error("question not found", slog.Int("question_id", questionID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("question not found"))
			return
		}
		log.Error("failed to list answers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list answers"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"answers": answers,
		"count":   len(answers),
	}))
}
