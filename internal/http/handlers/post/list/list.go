// Package list реализует HTTP-обработчик листинга постов с фильтрами.
//
// Поддерживаются фильтры по автору, поиск по заголовку и тексту,
// отбор по тегам и сортировка по популярности.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/forum-backend/internal/http/response"
	"github.com/magabrotheeeer/forum-backend/internal/lib/sl"
	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики листинга постов.
type Service interface {
	List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error)
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
// @Summary Список постов
// @Description Возвращает посты по фильтрам. По умолчанию новые первыми, sort=popular сортирует по разнице голосов.
// @Tags Posts
// @Produce  json
// @Param author query string false "Почта автора"
// @Param search query string false "Поиск по заголовку и тексту"
// @Param tags query string false "Теги через запятую, пост должен содержать все"
// @Param sort query string false "popular — сортировка по разнице голосов"
// @Success 200 {object} map[string]any "Список постов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /posts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := models.PostFilter{
		AuthorEmail:      r.URL.Query().Get("author"),
		Search:           r.URL.Query().Get("search"),
		SortByPopularity: r.URL.Query().Get("sort") == "popular",
	}
	if tags := r.URL.Query().Get("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}

	posts, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list posts"))
		return
	}

	log.Info("success to list posts", slog.Int("count", len(posts)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"posts": posts,
		"count": len(posts),
	}))
}
