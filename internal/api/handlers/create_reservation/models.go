package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	createReservation "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ServiceType string   `json:"serviceType"` // hourly, mix, master
	Date        string   `json:"date,omitempty"`
	SlotIDs     []string `json:"slots,omitempty"`
	TitleCount  int      `json:"titleCount,omitempty"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Message     string   `json:"message,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          string   `json:"id"`
	ServiceType string   `json:"serviceType"`
	ServiceName string   `json:"serviceName"`
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
	TitleCount  *int     `json:"titleCount,omitempty"`
	Hours       *int     `json:"hours,omitempty"`
	TotalAmount int64    `json:"totalAmount"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	Links       Links    `json:"links"`
}

// Links ссылки, которые показываются после бронирования
type Links struct {
	Wave     string `json:"wave"`
	WhatsApp string `json:"whatsapp"`
	Phone    string `json:"phone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		ServiceType: domain.ServiceType(r.ServiceType),
		Date:        r.Date,
		SlotIDs:     r.SlotIDs,
		TitleCount:  r.TitleCount,
		Contact: domain.Contact{
			Name:    r.Name,
			Email:   r.Email,
			Phone:   r.Phone,
			Message: r.Message,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	res := resp.Reservation
	slots := res.Slots
	if slots == nil {
		slots = []string{}
	}
	return &ReservationResponse{
		ID:          res.ID,
		ServiceType: string(res.ServiceType),
		ServiceName: res.ServiceType.Label(),
		Date:        res.Date.Format(domain.DateFormat),
		Slots:       slots,
		TitleCount:  res.TitleCount,
		Hours:       res.Hours,
		TotalAmount: res.TotalAmount,
		Description: resp.Description,
		Status:      string(res.Status),
		CreatedAt:   res.CreatedAt.Format(time.RFC3339),
		Links: Links{
			Wave:     resp.WaveURL,
			WhatsApp: resp.WhatsAppURL,
			Phone:    resp.PhoneURL,
		},
	}
}
