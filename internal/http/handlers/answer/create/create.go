// Package create реализует HTTP-обработчик создания ответа на вопрос.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/forum-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/forum-backend/internal/http/response"
	"github.com/magabrotheeeer/forum-backend/internal/lib/sl"
	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики создания ответа.
type Service interface {
	Answer(ctx context.Context, questionID int, req models.DummyAnswer) (int, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Ответить на вопрос
// @Description Создает ответ на вопрос от имени текущего пользователя.
// @Tags Questions
// @Accept  json
// @Produce  json
// @Param id path int true "ID вопроса"
// @Param request body models.DummyAnswer true "Текст ответа"
// @Success 200 {object} map[string]any "Успешное создание ответа"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Вопрос не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /questions/{id}/answers [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.answer.create"
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

	var req models.DummyAnswer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	email, ok := r.Context().Value(middlewarectx.UserEmail).(string)
	if !ok || email == "" {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	req.AuthorEmail = email

	id, err := h.service.Answer(r.Context(), questionID, req)
	if err != nil {
		if errors.Is(err, models.ErrQuestionNotFound) {
			log.Error("question not found", slog.Int("question_id", questionID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("question not found"))
			return
		}
		log.Error("failed to create answer", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create answer"))
		return
	}

	log.Info("success to create answer", slog.Int("id", id), slog.Int("question_id", questionID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"last_added_id": id,
	}))
}
