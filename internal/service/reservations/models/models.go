package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// ListReservationsRequest фильтры списка бронирований для админки
type ListReservationsRequest struct {
	Status *string `json:"status,omitempty"`
	Date   *string `json:"date,omitempty"` // "2026-10-20", одна дата
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	var filter domain.ReservationFilter

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Date != nil {
		day, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.StartDate = &day
		filter.EndDate = &day
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// ReservationResponse бронирование в ответе админки
type ReservationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message,omitempty"`
	Date        string    `json:"date"` // "2026-10-20"
	Slots       []string  `json:"slots"`
	ServiceType string    `json:"serviceType"`
	ServiceName string    `json:"serviceName"` // "Réservation Horaire"
	TitleCount  *int      `json:"titleCount,omitempty"`
	Hours       *int      `json:"hours,omitempty"`
	TotalAmount int64     `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// StatsResponse статистика за месяц
type StatsResponse struct {
	Period     string `json:"period"` // "octobre 2026"
	Count      int    `json:"count"`
	TotalHours int    `json:"totalHours"`
	Revenue    int64  `json:"revenue"`
	Currency   string `json:"currency"`
}

// Конвертеры

// ToDomainStatus конвертирует строку в domain.ReservationStatus
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// FromDomainReservation конвертирует domain.Reservation в ReservationResponse
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	slots := r.Slots
	if slots == nil {
		slots = []string{}
	}
	return &ReservationResponse{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Message:     r.Message,
		Date:        r.Date.Format(domain.DateFormat),
		Slots:       slots,
		ServiceType: string(r.ServiceType),
		ServiceName: r.ServiceType.Label(),
		TitleCount:  r.TitleCount,
		Hours:       r.Hours,
		TotalAmount: r.TotalAmount,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	items := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}
