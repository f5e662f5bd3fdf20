// Package paymentprovider реализует клиент Stripe для создания платежных
// намерений. Сервис не проверяет и не подтверждает платежи сам: клиент
// подтверждает платеж на стороне Stripe, после чего сохраняет квитанцию
// через API форума.
package paymentprovider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client клиент Stripe API.
type Client struct {
	secretKey  string
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент Stripe.
func NewClient(secretKey string) *Client {
	return &Client{
		secretKey:  secretKey,
		apiURL:     "https://api.stripe.com/v1",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, form url.Values) (*http.Request, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

// CreatePaymentIntent создаёт платежное намерение. Сумма передается
// в минимальных единицах валюты (центах), как того требует Stripe.
func (c *Client) CreatePaymentIntent(ctx context.Context, reqParams CreatePaymentIntentRequest) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(reqParams.Amount, 10))
	form.Set("currency", reqParams.Currency)
	for i, m := range reqParams.PaymentMethodTypes {
		form.Set("payment_method_types["+strconv.Itoa(i)+"]", m)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/payment_intents", form)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error.Message != "" {
			return nil, errors.New("stripe: " + errResp.Error.Message)
		}
		return nil, errors.New("unexpected status: " + resp.Status)
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, err
	}
	return &intent, nil
}
