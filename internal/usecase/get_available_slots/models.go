package get_available_slots

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// Request модель запроса на получение слотов
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа со статусами слотов
type Response struct {
	Date     string
	Slots    []domain.SlotWithStatus // без слотов too_soon
	Degraded bool                    // занятые слоты не удалось прочитать, всё показано свободным
}
