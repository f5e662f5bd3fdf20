// Package create реализует HTTP-обработчик для создания новых постов.
//
// Handler принимает JSON-запрос с данными поста, валидирует их, извлекает почту автора из контекста,
// вызывает бизнес-логику создания поста через сервис и возвращает ID созданной записи в JSON-формате.
//
// Превышение квоты постов возвращается как HTTP 403 с лимитом в тексте ошибки.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/forum-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/forum-backend/internal/http/response"
	"github.com/magabrotheeeer/forum-backend/internal/lib/sl"
	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// Handler управляет HTTP-запросами на создание новых постов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания постов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания поста.
type Service interface {
	Create(ctx context.Context, req models.DummyPost) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новый пост
// @Description Создает пост от имени текущего пользователя с учётом квоты. Возвращает ID созданной записи.
// @Tags Posts
// @Accept  json
// @Produce  json
// @Param request body models.DummyPost true "Данные нового поста"
// @Success 200 {object} map[string]any "Успешное создание поста"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Превышена квота постов"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании поста"
// @Router /posts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPost
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	email, ok := r.Context().Value(middlewarectx.UserEmail).(string)
	if !ok || email == "" {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	req.AuthorEmail = email

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		var quotaErr *models.QuotaExceededError
		if errors.As(err, &quotaErr) {
			log.Error("post quota exceeded", slog.Int("limit", quotaErr.Limit))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error(fmt.Sprintf("you have reached your post limit of %d", quotaErr.Limit)))
			return
		}
		log.Error("failed to create post", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create post"))
		return
	}

	log.Info("success to create post", slog.Any("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"last_added_id": id,
	}))
}
