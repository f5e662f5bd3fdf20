package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// SavePayment сохраняет квитанцию о платеже и возвращает её ID.
// Квитанции неизменяемы: записи никогда не обновляются и не удаляются.
func (s *Storage) SavePayment(ctx context.Context, payment models.Payment) (int, error) {
	const op = "storage.SavePayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payments (email, payment_id, price, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		payment.Email, payment.PaymentID, payment.Price, payment.Status).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// FindPaymentByPaymentID возвращает квитанцию по идентификатору платежа
// провайдера или (nil, nil), если квитанция не найдена.
func (s *Storage) FindPaymentByPaymentID(ctx context.Context, paymentID string) (*models.Payment, error) {
	const op = "storage.FindPaymentByPaymentID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, payment_id, price, status, created_at
			  FROM payments
			  WHERE payment_id = $1`
	var p models.Payment
	row := s.DB.QueryRowContext(ctx, query, paymentID)
	if err := row.Scan(&p.ID, &p.Email, &p.PaymentID, &p.Price, &p.Status, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// FindLatestSuccessfulPayment возвращает последнюю успешную квитанцию
// пользователя или (nil, nil), если таких нет.
func (s *Storage) FindLatestSuccessfulPayment(ctx context.Context, email string) (*models.Payment, error) {
	const op = "storage.FindLatestSuccessfulPayment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, payment_id, price, status, created_at
			  FROM payments
			  WHERE email = $1 AND status = $2
			  ORDER BY created_at DESC, id DESC
			  LIMIT 1`
	var p models.Payment
	row := s.DB.QueryRowContext(ctx, query, email, models.PaymentStatusSuccess)
	if err := row.Scan(&p.ID, &p.Email, &p.PaymentID, &p.Price, &p.Status, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
