// Package upgrade реализует HTTP-обработчик оформления платного членства.
//
// Повышение выполняется после оплаты: обработчик принимает идентификатор
// платежа, сервис проверяет квитанцию и выставляет пользователю членство,
// значок и увеличенный лимит постов.
package upgrade

import (
	"context"
	"encoding/json"
	"errors"
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

// Request — входные данные оформления членства.
type Request struct {
	PaymentID string `json:"payment_id" validate:"required"`
}

// Service описывает интерфейс воркфлоу оформления членства.
type Service interface {
	Upgrade(ctx context.Context, email, paymentID string) (*models.User, error)
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
// @Summary Оформить платное членство
// @Description Проверяет квитанцию о платеже и повышает текущего пользователя до платного членства.
// @Tags Membership
// @Accept  json
// @Produce  json
// @Param request body Request true "Идентификатор платежа"
// @Success 200 {object} map[string]any "Членство оформлено"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Платеж или пользователь не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /membership/upgrade [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.upgrade"
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

	email, ok := r.Context().Value(middlewarectx.UserEmail).(string)
	if !ok || email == "" {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	user, err := h.service.Upgrade(r.Context(), email, req.PaymentID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPaymentNotFound):
			log.Error("payment not found", slog.String("payment_id", req.PaymentID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("payment not found"))
		case errors.Is(err, models.ErrUserNotFound):
			log.Error("user not found", slog.String("email", email))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		default:
			log.Error("failed to upgrade membership", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not upgrade membership"))
		}
		return
	}

	log.Info("membership upgraded", slog.String("email", email))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"membership": user.Membership,
		"badge":      user.Badge,
		"max_posts":  user.MaxPosts,
	}))
}
