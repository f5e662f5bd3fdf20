package paymentprovider

// CreatePaymentIntentRequest запрос на создание платежного намерения.
type CreatePaymentIntentRequest struct {
	Amount             int64    // Сумма в минимальных единицах валюты
	Currency           string   // Код валюты, например usd
	PaymentMethodTypes []string // Разрешённые способы оплаты
}

// PaymentIntent ответ Stripe на создание платежного намерения.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// ErrorResponse ошибка Stripe API.
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
