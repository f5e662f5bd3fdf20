// Package intent обрабатывает создание платежного намерения у провайдера.
package intent

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
	"github.com/magabrotheeeer/forum-backend/internal/paymentprovider"
)

// Request представляет запрос на создание платежного намерения.
type Request struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// ProviderClient определяет интерфейс для работы с платежным провайдером.
type ProviderClient interface {
	CreatePaymentIntent(ctx context.Context, reqParams paymentprovider.CreatePaymentIntentRequest) (*paymentprovider.PaymentIntent, error)
}

// Handler обрабатывает запросы на создание платежных намерений.
type Handler struct {
	log            *slog.Logger   // Логгер для записи информации и ошибок
	providerClient ProviderClient // Клиент для работы с провайдером
	validate       *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, providerClient ProviderClient) *Handler {
	return &Handler{
		log:            log,
		providerClient: providerClient,
		validate:       validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать платежное намерение
// @Description Создает платежное намерение у провайдера и возвращает client_secret для подтверждения оплаты.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body Request true "Сумма платежа"
// @Success 200 {object} map[string]any "Платежное намерение создано"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании платежа"
// @Router /payments/intent [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.intent"
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

	// Провайдер принимает сумму в минимальных единицах валюты.
	intent, err := h.providerClient.CreatePaymentIntent(r.Context(), paymentprovider.CreatePaymentIntentRequest{
		Amount:             int64(req.Price * 100),
		Currency:           "usd",
		PaymentMethodTypes: []string{"card"},
	})
	if err != nil {
		log.Error("failed to create payment intent", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create payment intent"))
		return
	}

	log.Info("payment intent created", slog.String("payment_id", intent.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"client_secret": intent.ClientSecret,
		"payment_id":    intent.ID,
	}))
}
