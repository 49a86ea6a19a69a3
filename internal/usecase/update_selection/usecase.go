package update_selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
)

// UseCase применяет действие пользователя к выбору и пересчитывает цену
type UseCase struct {
	slots  AvailableSlotsUseCase
	rates  RatesProvider
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slots AvailableSlotsUseCase, rates RatesProvider, logger Logger) *UseCase {
	return &UseCase{
		slots:  slots,
		rates:  rates,
		logger: logger,
	}
}

// Execute выполняет use case обновления выбора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Восстанавливаем выбор из состояния клиента
	sel, err := fromState(req.State)
	if err != nil {
		uc.logger.Warn("UpdateSelection: invalid state: %v", err)
		return nil, err
	}

	// 2. Применяем действие
	sel, err = uc.apply(ctx, sel, req.Action)
	if err != nil {
		uc.logger.Warn("UpdateSelection: action=%s rejected: %v", req.Action.Type, err)
		return nil, err
	}

	// 3. Пересчитываем цену
	rates, err := uc.rates.Current(ctx)
	if err != nil {
		uc.logger.Error("UpdateSelection: failed to load rates: %v", err)
		return nil, fmt.Errorf("%w: failed to load rates: %v", ErrInternal, err)
	}

	return &Response{
		State:       toState(sel),
		Total:       sel.ComputeTotal(rates),
		Currency:    rates.Currency,
		Description: sel.Describe(),
	}, nil
}

func (uc *UseCase) apply(ctx context.Context, sel domain.Selection, action Action) (domain.Selection, error) {
	switch action.Type {
	case ActionReset:
		return domain.NewSelection(), nil

	case ActionSetServiceType:
		next, err := sel.SetServiceType(action.ServiceType)
		if err != nil {
			return sel, fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
		return next, nil

	case ActionSetTitleCount:
		next, err := sel.SetTitleCount(action.TitleCount)
		if err != nil {
			return sel, fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
		return next, nil

	case ActionSetDate:
		if _, err := uc.slots.Execute(ctx, &getAvailableSlots.Request{Date: action.Date}); err != nil {
			return sel, mapSlotsError(err)
		}
		next, err := sel.SetDate(action.Date)
		if err != nil {
			return sel, fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
		return next, nil

	case ActionToggleSlot:
		return uc.toggleSlot(ctx, sel, action.SlotID)
	}

	return sel, fmt.Errorf("%w: %q", ErrInvalidAction, action.Type)
}

// toggleSlot снятие слота разрешено всегда, добавить можно только свободный слот
func (uc *UseCase) toggleSlot(ctx context.Context, sel domain.Selection, slotID string) (domain.Selection, error) {
	run, ok := sel.Run()
	if !ok {
		return sel, fmt.Errorf("%w: %v", ErrInvalidAction, domain.ErrNotHourly)
	}
	if run.Date == "" {
		return sel, ErrDateRequired
	}

	if !contains(run.SlotIDs, slotID) {
		resp, err := uc.slots.Execute(ctx, &getAvailableSlots.Request{Date: run.Date})
		if err != nil {
			return sel, mapSlotsError(err)
		}
		if !isAvailable(resp.Slots, slotID) {
			if _, known := domain.LookupSlot(slotID); !known {
				return sel, fmt.Errorf("%w: %v", ErrInvalidAction, domain.ErrUnknownSlot)
			}
			return sel, fmt.Errorf("%w: %s", ErrSlotNotAvailable, slotID)
		}
	}

	next, err := sel.ToggleSlot(slotID)
	if err != nil {
		return sel, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	return next, nil
}

func fromState(s State) (domain.Selection, error) {
	switch {
	case s.ServiceType == "" || s.ServiceType == domain.ServiceHourly:
		sel, err := domain.NewHourlySelection(s.Date, s.SlotIDs)
		if err != nil {
			return domain.Selection{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		return sel, nil
	case s.ServiceType.IsTitleBased():
		return domain.NewTitleSelection(s.ServiceType, domain.ClampTitleCount(s.TitleCount))
	}
	return domain.Selection{}, fmt.Errorf("%w: unknown service type %q", ErrInvalidState, s.ServiceType)
}

func toState(sel domain.Selection) State {
	st := State{ServiceType: sel.Service, SlotIDs: []string{}}
	if run, ok := sel.Run(); ok {
		st.Date = run.Date
		st.SlotIDs = append(st.SlotIDs, run.SlotIDs...)
		return st
	}
	st.TitleCount = sel.Titles()
	return st
}

func mapSlotsError(err error) error {
	switch {
	case errors.Is(err, getAvailableSlots.ErrInvalidDate),
		errors.Is(err, getAvailableSlots.ErrDateInPast),
		errors.Is(err, getAvailableSlots.ErrStudioClosed),
		errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func isAvailable(slots []domain.SlotWithStatus, id string) bool {
	for _, s := range slots {
		if s.ID == id {
			return s.Status == domain.SlotAvailable
		}
	}
	return false
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
