package start_payment

// Request модель запроса на оплату
type Request struct {
	ReservationID string
}

// Response ссылки на оплату
type Response struct {
	ReservationID string
	Amount        int64 // сумма к оплате через PayTech (для hourly - предоплата)
	TotalAmount   int64
	Currency      string
	RedirectURL   string // PayTech
	WaveURL       string // Wave, полная сумма
}

// Config параметры оплаты
type Config struct {
	WaveBaseURL string
	Currency    string
}
