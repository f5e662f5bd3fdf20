// Package membership содержит воркфлоу оформления платного членства:
// сохранение квитанций, проверку статуса платежа и повышение пользователя.
package membership

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// PaymentRepository описывает контракт для работы с квитанциями о платежах.
type PaymentRepository interface {
	SavePayment(ctx context.Context, payment models.Payment) (int, error)
	FindPaymentByPaymentID(ctx context.Context, paymentID string) (*models.Payment, error)
	FindLatestSuccessfulPayment(ctx context.Context, email string) (*models.Payment, error)
}

// UserRepository описывает часть хранилища пользователей, нужную повышению.
type UserRepository interface {
	UpgradeMembership(ctx context.Context, email string) (*models.User, error)
}

// Service реализует операции членства.
type Service struct {
	payments PaymentRepository
	users    UserRepository
	log      *slog.Logger
}

func New(payments PaymentRepository, users UserRepository, log *slog.Logger) *Service {
	return &Service{
		payments: payments,
		users:    users,
		log:      log,
	}
}

// SavePayment сохраняет квитанцию о платеже. Запись неизменяема:
// повторное сохранение того же payment_id отклоняет база.
func (s *Service) SavePayment(ctx context.Context, req models.DummyPayment) (int, error) {
	payment := models.Payment{
		Email:     req.Email,
		PaymentID: req.PaymentID,
		Price:     req.Price,
		Status:    req.Status,
	}
	id, err := s.payments.SavePayment(ctx, payment)
	if err != nil {
		return 0, fmt.Errorf("failed to save payment: %w", err)
	}
	s.log.Info("saved payment", slog.String("payment_id", req.PaymentID), slog.String("email", req.Email))
	return id, nil
}

// PaymentStatus возвращает последний успешный платеж пользователя.
func (s *Service) PaymentStatus(ctx context.Context, email string) (*models.Payment, error) {
	payment, err := s.payments.FindLatestSuccessfulPayment(ctx, email)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, models.ErrPaymentNotFound
	}
	return payment, nil
}

// Upgrade повышает пользователя до платного членства. Сначала
// проверяется, что квитанция с таким payment_id существует, затем
// пользователю выставляются членство, значок и увеличенный лимит.
// Повторное повышение по той же квитанции безвредно: обновление
// идемпотентно.
func (s *Service) Upgrade(ctx context.Context, email, paymentID string) (*models.User, error) {
	payment, err := s.payments.FindPaymentByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	if payment == nil {
		return nil, models.ErrPaymentNotFound
	}

	user, err := s.users.UpgradeMembership(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade user: %w", err)
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	s.log.Info("upgraded membership",
		slog.String("email", email),
		slog.String("payment_id", paymentID))

	return user, nil
}
