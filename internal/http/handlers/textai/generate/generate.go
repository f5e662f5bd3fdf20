// Package generate реализует HTTP-обработчик обращения к текстовой AI-модели.
//
// Обработчик проксирует запрос пользователя модели и возвращает текст ответа.
// История не сохраняется автоматически: для этого есть отдельная операция.
package generate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/forum-backend/internal/http/response"
	"github.com/magabrotheeeer/forum-backend/internal/lib/sl"
)

// Request — входные данные запроса к модели.
type Request struct {
	Prompt string `json:"prompt" validate:"required,max=4000"`
}

// Service описывает интерфейс бизнес-логики обращения к модели.
type Service interface {
	Generate(ctx context.Context, prompt string) (string, error)
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
// @Summary Запрос к текстовой модели
// @Description Отправляет запрос AI-модели и возвращает текст ответа.
// @Tags TextAI
// @Accept  json
// @Produce  json
// @Param request body Request true "Текст запроса"
// @Success 200 {object} map[string]any "Ответ модели"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Модель недоступна"
// @Router /textai/generate [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.textai.generate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	answer, err := h.service.Generate(r.Context(), req.Prompt)
	if err != nil {
		log.Error("failed to generate answer", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not generate answer"))
		return
	}

	log.Info("answer generated", slog.Int("answer_len", len(answer)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"answer": answer,
	}))
}
