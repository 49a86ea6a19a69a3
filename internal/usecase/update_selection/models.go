package update_selection

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// ActionType действие пользователя в виджете бронирования
type ActionType string

const (
	ActionToggleSlot     ActionType = "toggle_slot"
	ActionSetServiceType ActionType = "set_service_type"
	ActionSetDate        ActionType = "set_date"
	ActionSetTitleCount  ActionType = "set_title_count"
	ActionReset          ActionType = "reset"
)

// State плоское представление domain.Selection
type State struct {
	ServiceType domain.ServiceType
	Date        string
	SlotIDs     []string
	TitleCount  int
}

// Action одно изменение состояния
type Action struct {
	Type        ActionType
	SlotID      string
	ServiceType domain.ServiceType
	Date        string
	TitleCount  int
}

// Request текущее состояние и действие
type Request struct {
	State  State
	Action Action
}

// Response новое состояние, цена и описание
type Response struct {
	State       State
	Total       int64
	Currency    string
	Description string
}
