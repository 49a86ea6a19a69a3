package paytech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платёжного бэкенда PayTech
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PayTech
func NewClient(endpoint string, timeout time.Duration, log Logger) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreatePayment создаёт платёж и возвращает ссылку на оплату
func (c *Client) CreatePayment(ctx context.Context, payment *PaymentRequest) (*PaymentResponse, error) {
	body, err := json.Marshal(payment)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Info("PayTech: creating payment amount=%d, name=%s", payment.Amount, payment.Name)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Error("PayTech: unexpected status %d: %s", resp.StatusCode, string(raw))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var result PaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.Error || result.RedirectURL == "" {
		return nil, fmt.Errorf("%w: %s", ErrPaymentRejected, result.Message)
	}
	return &result, nil
}

// ServiceTypeCode код типа услуги в формате платёжного бэкенда
func ServiceTypeCode(t domain.ServiceType) string {
	switch t {
	case domain.ServiceHourly:
		return "horaire"
	case domain.ServiceMix:
		return "mixage"
	case domain.ServiceMaster:
		return "mastering"
	}
	return string(t)
}

// FromReservation данные бронирования для платёжного бэкенда
func FromReservation(r *domain.Reservation) ReservationData {
	return ReservationData{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Message:     r.Message,
		Date:        r.Date.Format(domain.DateFormat),
		Slots:       r.Slots,
		Hours:       r.Hours,
		TotalAmount: r.TotalAmount,
		ServiceType: ServiceTypeCode(r.ServiceType),
		TitleCount:  r.TitleCount,
	}
}
