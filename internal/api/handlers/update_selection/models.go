package update_selection

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	updateSelection "github.com/m04kA/SMC-StudioBooking/internal/usecase/update_selection"
)

// SelectionState состояние виджета бронирования на клиенте
type SelectionState struct {
	ServiceType string   `json:"serviceType"`
	Date        string   `json:"date,omitempty"`
	SlotIDs     []string `json:"slots"`
	TitleCount  int      `json:"titleCount"`
}

// SelectionAction действие пользователя
type SelectionAction struct {
	Type        string `json:"type"`
	SlotID      string `json:"slotId,omitempty"`
	ServiceType string `json:"serviceType,omitempty"`
	Date        string `json:"date,omitempty"`
	TitleCount  int    `json:"titleCount,omitempty"`
}

// UpdateSelectionRequest HTTP request model
type UpdateSelectionRequest struct {
	State  SelectionState  `json:"state"`
	Action SelectionAction `json:"action"`
}

// UpdateSelectionResponse HTTP response model
type UpdateSelectionResponse struct {
	State       SelectionState `json:"state"`
	Total       int64          `json:"total"`
	Currency    string         `json:"currency"`
	Description string         `json:"description"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пустой тип услуги означает начальное состояние (hourly)
func (r *UpdateSelectionRequest) ToUseCaseRequest() *updateSelection.Request {
	serviceType := domain.ServiceType(r.State.ServiceType)
	if serviceType == "" {
		serviceType = domain.ServiceHourly
	}
	return &updateSelection.Request{
		State: updateSelection.State{
			ServiceType: serviceType,
			Date:        r.State.Date,
			SlotIDs:     r.State.SlotIDs,
			TitleCount:  r.State.TitleCount,
		},
		Action: updateSelection.Action{
			Type:        updateSelection.ActionType(r.Action.Type),
			SlotID:      r.Action.SlotID,
			ServiceType: domain.ServiceType(r.Action.ServiceType),
			Date:        r.Action.Date,
			TitleCount:  r.Action.TitleCount,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSelection.Response) *UpdateSelectionResponse {
	slots := resp.State.SlotIDs
	if slots == nil {
		slots = []string{}
	}
	return &UpdateSelectionResponse{
		State: SelectionState{
			ServiceType: string(resp.State.ServiceType),
			Date:        resp.State.Date,
			SlotIDs:     slots,
			TitleCount:  resp.State.TitleCount,
		},
		Total:       resp.Total,
		Currency:    resp.Currency,
		Description: resp.Description,
	}
}
