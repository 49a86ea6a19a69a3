package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-StudioBooking/internal/service/reservations/models"
)

// Service сервис администрирования бронирований
type Service struct {
	reservationRepo ReservationRepository
	cache           SlotsCache
	txManager       TxManager
	location        *time.Location
	currency        string
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	reservationRepo ReservationRepository,
	cache SlotsCache,
	txManager TxManager,
	location *time.Location,
	currency string,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		cache:           cache,
		txManager:       txManager,
		location:        location,
		currency:        currency,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// List возвращает все бронирования, новые сверху.
// Опционально фильтрует по статусу и дате
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.reservationRepo.ListAll(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// UpdateStatus меняет статус бронирования (pending, confirmed, cancelled)
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	updated, err := s.reservationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Отмена освобождает слоты, обратная смена статуса снова их занимает
	s.invalidate(ctx, updated)

	s.logger.Info("UpdateStatus: reservation id=%s now %s", id, status)
	return models.FromDomainReservation(updated), nil
}

// Delete удаляет бронирование, предварительно проверив, что оно существует
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	// проверка существования и удаление в одной транзакции
	var res *domain.Reservation
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		res, err = s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Delete: reservation id=%s not found", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Delete: repository error for id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if err := s.reservationRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Delete: reservation id=%s disappeared during deletion", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Delete: repository error for id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrInternal) {
			return err
		}
		s.logger.Error("Delete: transaction error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - transaction error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, res)

	s.logger.Info("Delete: reservation id=%s deleted", id)
	return nil
}

// Stats агрегаты за текущий месяц в часовом поясе студии, отменённые не учитываются
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	now := s.timeProvider.Now().In(s.location)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	stats, err := s.reservationRepo.Stats(ctx, start, end)
	if err != nil {
		s.logger.Error("Stats: repository error for %s: %v", start.Format("2006-01"), err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return &models.StatsResponse{
		Period:     catalog.MonthLabel(start),
		Count:      stats.Count,
		TotalHours: stats.TotalHours,
		Revenue:    stats.Revenue,
		Currency:   s.currency,
	}, nil
}

func (s *Service) invalidate(ctx context.Context, r *domain.Reservation) {
	if r.ServiceType != domain.ServiceHourly {
		return
	}
	s.cache.Invalidate(ctx, r.Date.Format(domain.DateFormat))
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: reservation id must be a uuid", ErrInvalidInput)
	}
	return nil
}
