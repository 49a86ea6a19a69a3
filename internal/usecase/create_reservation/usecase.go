package create_reservation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/links"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	rates           RatesProvider
	cache           SlotsCache
	txManager       TransactionManager
	catalog         *catalog.Catalog
	metrics         Metrics
	links           LinksConfig
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	rates RatesProvider,
	cache SlotsCache,
	txManager TransactionManager,
	cat *catalog.Catalog,
	metrics Metrics,
	linksCfg LinksConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		rates:           rates,
		cache:           cache,
		txManager:       txManager,
		catalog:         cat,
		metrics:         metrics,
		links:           linksCfg,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и вставка идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: service=%s, date=%s, slots=%v, titles=%d",
		req.ServiceType, req.Date, req.SlotIDs, req.TitleCount)

	// 1. Восстанавливаем выбор и валидируем его вместе с контактами
	sel, err := buildSelection(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: invalid selection: %v", err)
		return nil, err
	}

	contact := trimContact(req.Contact)
	if err := sel.Validate(contact); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата и минимальный запас времени
	now := uc.timeProvider.Now()
	day, err := resolveDate(uc.catalog, sel, now)
	if err != nil {
		uc.logger.Warn("CreateReservation: date rejected: %v", err)
		return nil, err
	}

	run, isHourly := sel.Run()
	if isHourly {
		if err := checkLeadTime(uc.catalog, day, run.SlotIDs, now); err != nil {
			uc.logger.Warn("CreateReservation: %v", err)
			return nil, err
		}
	}

	// 3. Цена по действующим тарифам
	rates, err := uc.rates.Current(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to load rates: %v", err)
		return nil, fmt.Errorf("%w: failed to load rates: %v", ErrInternal, err)
	}

	reservation := &domain.Reservation{
		ID:          uuid.NewString(),
		Name:        contact.Name,
		Email:       contact.Email,
		Phone:       contact.Phone,
		Message:     contact.Message,
		Date:        day,
		ServiceType: sel.Service,
		TotalAmount: sel.ComputeTotal(rates),
		Status:      domain.StatusPending,
	}
	if isHourly {
		hours := sel.Hours()
		reservation.Slots = run.SlotIDs
		reservation.Hours = &hours
	} else {
		titles := sel.Titles()
		reservation.TitleCount = &titles
	}

	// 4. Проверка занятости и вставка в сериализуемой транзакции
	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if isHourly {
			existing, err := uc.reservationRepo.ListByDate(txCtx, day)
			if err != nil {
				uc.logger.Error("CreateReservation: failed to load reservations: %v", err)
				return fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
			}
			if err := checkConflicts(domain.BookedSlotIDs(existing), run.SlotIDs); err != nil {
				uc.logger.Warn("CreateReservation: %v", err)
				return err
			}
			// повторная проверка запаса времени на момент записи
			if err := checkLeadTime(uc.catalog, day, run.SlotIDs, uc.timeProvider.Now()); err != nil {
				uc.logger.Warn("CreateReservation: %v", err)
				return err
			}
		}

		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 5. После коммита: кеш, метрики, ссылки
	if isHourly {
		uc.cache.Invalidate(ctx, day.Format(domain.DateFormat))
	}
	uc.metrics.ReservationCreated(string(created.ServiceType))

	description := sel.Describe()
	resp := &Response{
		Reservation: created,
		Description: description,
		WaveURL: links.WaveURL(uc.links.WaveBaseURL, created.TotalAmount, rates.Currency,
			created.ID, links.WaveDescription(created.Name)),
		WhatsAppURL: links.WhatsAppURL(uc.links.WhatsAppPhone, links.ConfirmationMessage(created, description)),
		PhoneURL:    links.PhoneURL(uc.links.StudioPhone),
	}

	uc.logger.Info("CreateReservation: reservation id=%s created, service=%s, total=%d",
		created.ID, created.ServiceType, created.TotalAmount)
	return resp, nil
}
