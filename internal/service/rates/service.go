package rates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	ratesRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/rates"
	"github.com/m04kA/SMC-StudioBooking/internal/service/rates/models"
)

// Service сервис тарифов студии
type Service struct {
	ratesRepo RatesRepository
	txManager TxManager
	defaults  domain.Rates
	logger    Logger
}

// NewService создает новый экземпляр сервиса тарифов.
// defaults используются, пока тарифы не сохранены в БД
func NewService(ratesRepo RatesRepository, txManager TxManager, defaults domain.Rates, logger Logger) *Service {
	return &Service{
		ratesRepo: ratesRepo,
		txManager: txManager,
		defaults:  defaults,
		logger:    logger,
	}
}

// Current действующие тарифы
func (s *Service) Current(ctx context.Context) (domain.Rates, error) {
	rates, _, err := s.load(ctx)
	if err != nil {
		return domain.Rates{}, err
	}
	return *rates, nil
}

// Get тарифы для публичного API
func (s *Service) Get(ctx context.Context) (*models.RatesResponse, error) {
	rates, isDefault, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRates(rates, isDefault), nil
}

// Update частично обновляет тарифы, все значения должны быть положительными
func (s *Service) Update(ctx context.Context, req *models.UpdateRatesRequest) (*models.RatesResponse, error) {
	s.logger.Info("Update: updating rates hourly=%v, mix=%v, master=%v", req.Hourly, req.Mix, req.Master)

	if req.Hourly == nil && req.Mix == nil && req.Master == nil {
		return nil, fmt.Errorf("%w: no rate to update", ErrInvalidInput)
	}

	// чтение и запись в одной сериализуемой транзакции
	var saved *domain.Rates
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, _, err := s.load(txCtx)
		if err != nil {
			return err
		}

		updated := *current
		if req.Hourly != nil {
			updated.Hourly = *req.Hourly
		}
		if req.Mix != nil {
			updated.Mix = *req.Mix
		}
		if req.Master != nil {
			updated.Master = *req.Master
		}

		if updated.Hourly <= 0 || updated.Mix <= 0 || updated.Master <= 0 {
			s.logger.Warn("Update: non-positive rate rejected")
			return fmt.Errorf("%w: rates must be positive", ErrInvalidInput)
		}

		saved, err = s.ratesRepo.Upsert(txCtx, &updated)
		if err != nil {
			s.logger.Error("Update: repository error: %v", err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		s.logger.Error("Update: transaction error: %v", err)
		return nil, fmt.Errorf("%w: Update - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: rates saved hourly=%d, mix=%d, master=%d", saved.Hourly, saved.Mix, saved.Master)
	return models.FromDomainRates(saved, false), nil
}

// load читает тарифы из БД, при их отсутствии возвращает значения по умолчанию
func (s *Service) load(ctx context.Context) (*domain.Rates, bool, error) {
	rates, err := s.ratesRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, ratesRepo.ErrRatesNotFound) {
			defaults := s.defaults
			return &defaults, true, nil
		}
		s.logger.Error("load: repository error: %v", err)
		return nil, false, fmt.Errorf("%w: load - repository error: %v", ErrInternal, err)
	}
	if rates.Currency == "" {
		rates.Currency = s.defaults.Currency
	}
	return rates, false, nil
}
