package models

import "time"

// PaymentStatusSuccess статус успешно завершённого платежа.
const PaymentStatusSuccess = "success"

// Payment неизменяемая квитанция о платеже. Создаётся один раз после
// подтверждения платежа провайдером и затем используется воркфлоу
// оформления членства.
type Payment struct {
	ID        int       // Уникальный идентификатор записи
	Email     string    // Почта плательщика
	PaymentID string    // Идентификатор платежа у провайдера
	Price     float64   // Сумма платежа
	Status    string    // Статус платежа
	CreatedAt time.Time // Дата платежа
}

// DummyPayment используется для приёма данных из JSON-запроса на сохранение квитанции.
type DummyPayment struct {
	Email     string  `json:"-"`                              // Почта плательщика, заполняется из контекста
	PaymentID string  `json:"payment_id" validate:"required"` // Идентификатор платежа
	Price     float64 `json:"price" validate:"required,gt=0"` // Сумма
	Status    string  `json:"status" validate:"required"`     // Статус
}
