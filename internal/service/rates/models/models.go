package models

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// UpdateRatesRequest запрос на обновление тарифов.
// Все поля опциональны - обновляются только переданные значения
type UpdateRatesRequest struct {
	Hourly *int64 `json:"hourly,omitempty"`
	Mix    *int64 `json:"mix,omitempty"`
	Master *int64 `json:"master,omitempty"`
}

// RatesResponse ответ с тарифами
type RatesResponse struct {
	Currency  string     `json:"currency"`
	Hourly    int64      `json:"hourly"`
	Mix       int64      `json:"mix"`
	Master    int64      `json:"master"`
	IsDefault bool       `json:"isDefault"` // тарифы не сохранены, используются значения из конфигурации
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainRates конвертирует domain модель в DTO
func FromDomainRates(r *domain.Rates, isDefault bool) *RatesResponse {
	resp := &RatesResponse{
		Currency:  r.Currency,
		Hourly:    r.Hourly,
		Mix:       r.Mix,
		Master:    r.Master,
		IsDefault: isDefault,
	}
	if !r.UpdatedAt.IsZero() {
		updatedAt := r.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
