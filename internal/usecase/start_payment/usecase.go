package start_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBooking/internal/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/paytech"
	"github.com/m04kA/SMC-StudioBooking/internal/links"
)

// UseCase use case для запуска оплаты бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	payments        PaymentClient
	cfg             Config
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, payments PaymentClient, cfg Config, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		payments:        payments,
		cfg:             cfg,
		logger:          logger,
	}
}

// Execute создаёт платёж PayTech и возвращает ссылки на оплату.
// Результат оплаты сервис не отслеживает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if _, err := uuid.Parse(req.ReservationID); err != nil {
		return nil, fmt.Errorf("%w: reservation id must be a uuid", ErrInvalidInput)
	}

	res, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("StartPayment: reservation id=%s not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("StartPayment: failed to get reservation id=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if res.IsCancelled() {
		uc.logger.Warn("StartPayment: reservation id=%s is cancelled", res.ID)
		return nil, ErrReservationCancelled
	}

	amount := res.PaymentAmount()
	payment, err := uc.payments.CreatePayment(ctx, &paytech.PaymentRequest{
		Amount:          amount,
		Description:     paymentDescription(res),
		Name:            res.Name,
		Date:            catalog.LongDate(res.Date),
		ReservationData: paytech.FromReservation(res),
	})
	if err != nil {
		uc.logger.Error("StartPayment: payment provider failed for id=%s: %v", res.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	uc.logger.Info("StartPayment: payment created for id=%s, amount=%d", res.ID, amount)
	return &Response{
		ReservationID: res.ID,
		Amount:        amount,
		TotalAmount:   res.TotalAmount,
		Currency:      uc.cfg.Currency,
		RedirectURL:   payment.RedirectURL,
		WaveURL: links.WaveURL(uc.cfg.WaveBaseURL, res.TotalAmount, uc.cfg.Currency,
			res.ID, links.WaveDescription(res.Name)),
	}, nil
}

// paymentDescription "Réservation Horaire - 09h00 - 11h00", "Mixage de Titre - 3 titres"
func paymentDescription(r *domain.Reservation) string {
	if r.ServiceType == domain.ServiceHourly {
		return r.ServiceType.Label() + " - " + domain.DescribeSlots(r.Slots)
	}
	count := 0
	if r.TitleCount != nil {
		count = *r.TitleCount
	}
	sel, err := domain.NewTitleSelection(r.ServiceType, count)
	if err != nil {
		return r.ServiceType.Label()
	}
	return r.ServiceType.Label() + " - " + sel.Describe()
}
