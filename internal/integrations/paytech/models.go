package paytech

// PaymentRequest тело запроса на создание платежа
type PaymentRequest struct {
	Amount          int64           `json:"amount"`
	Description     string          `json:"description"`
	Name            string          `json:"name"`
	Date            string          `json:"date"`
	ReservationData ReservationData `json:"reservationData"`
}

// ReservationData данные бронирования в формате платёжного бэкенда
type ReservationData struct {
	Name        string   `json:"nom"`
	Email       string   `json:"email"`
	Phone       string   `json:"telephone"`
	Message     string   `json:"message"`
	Date        string   `json:"date_reservation"`
	Slots       []string `json:"creneaux"`
	Hours       *int     `json:"duree_heures"`
	TotalAmount int64    `json:"montant_total"`
	ServiceType string   `json:"type_service"` // horaire, mixage, mastering
	TitleCount  *int     `json:"nombre_titres"`
}

// PaymentResponse ответ платёжного бэкенда
type PaymentResponse struct {
	RedirectURL string `json:"redirectUrl"`
	Message     string `json:"message"`
	Error       bool   `json:"error"`
}
