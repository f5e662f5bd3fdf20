// Package list реализует HTTP-обработчик листинга объявлений.
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

// Service описывает интерфейс бизнес-логики объявлений.
type Service interface {
	List(ctx context.Context) ([]*models.Announcement, error)
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
// @Summary Список объявлений
// @Description Возвращает объявления администрации, новые первыми.
// @Tags Announcements
// @Produce  json
// @Success 200 {object} map[string]any "Список объявлений"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /announcements [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.announcement.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	announcements, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list announcements", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list announcements"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"announcements": announcements,
		"count":         len(announcements),
	}))
}
