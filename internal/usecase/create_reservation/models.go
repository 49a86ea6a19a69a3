package create_reservation

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	ServiceType domain.ServiceType
	Date        string   // YYYY-MM-DD, только для hourly
	SlotIDs     []string // только для hourly
	TitleCount  int      // только для mix и master
	Contact     domain.Contact
}

// Response созданное бронирование и ссылки для клиента
type Response struct {
	Reservation *domain.Reservation
	Description string // "09h00 - 11h00" или "3 titres"
	WaveURL     string
	WhatsAppURL string
	PhoneURL    string
}

// LinksConfig параметры ссылок после бронирования
type LinksConfig struct {
	WaveBaseURL   string
	StudioPhone   string
	WhatsAppPhone string
}
