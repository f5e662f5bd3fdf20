// Package report реализует HTTP-обработчик жалобы на комментарий.
//
// Жалоба сохраняет копию текста комментария, чтобы последующее удаление
// не стёрло предмет жалобы.
package report

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

	"github.com/magabrotheeeer/forum-backend/internal/http/response"
	"github.com/magabrotheeeer/forum-backend/internal/lib/sl"
	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// Request — входные данные жалобы.
type Request struct {
	Feedback string `json:"feedback" validate:"required"`
}

// Service описывает интерфейс бизнес-логики жалоб на комментарии.
type Service interface {
	Report(ctx context.Context, commentID int, feedback string) (int, error)
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
// @Summary Пожаловаться на комментарий
// @Description Сохраняет жалобу вместе с копией текста комментария.
// @Tags Comments
// @Accept  json
// @Produce  json
// @Param id path int true "ID комментария"
// @Param request body Request true "Причина жалобы"
// @Success 200 {object} map[string]any "Жалоба сохранена"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Комментарий не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /comments/{id}/report [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comment.report"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	commentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid comment id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid comment id"))
		return
	}

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

	id, err := h.service.Report(r.Context(), commentID, req.Feedback)
	if err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			log.Error("comment not found", slog.Int("id", commentID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("comment not found"))
			return
		}
		log.Error("failed to report comment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not report comment"))
		return
	}

	log.Info("success to report comment", slog.Int("report_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"report_id": id,
	}))
}
