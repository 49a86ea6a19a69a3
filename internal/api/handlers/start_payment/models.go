package start_payment

import startPayment "github.com/m04kA/SMC-StudioBooking/internal/usecase/start_payment"

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ReservationID string `json:"reservationId"`
	Amount        int64  `json:"amount"`
	TotalAmount   int64  `json:"totalAmount"`
	Currency      string `json:"currency"`
	RedirectURL   string `json:"redirectUrl"`
	WaveURL       string `json:"waveUrl"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *startPayment.Response) *PaymentResponse {
	return &PaymentResponse{
		ReservationID: resp.ReservationID,
		Amount:        resp.Amount,
		TotalAmount:   resp.TotalAmount,
		Currency:      resp.Currency,
		RedirectURL:   resp.RedirectURL,
		WaveURL:       resp.WaveURL,
	}
}
