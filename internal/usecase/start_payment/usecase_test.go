package start_payment

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/paytech"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

const resID = "6f1c7a3e-3f6b-4f0c-9a55-0d7c2b1a9e10"

type fakeRepo struct {
	res *domain.Reservation
	err error
}

func (r fakeRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.res == nil || r.res.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r.res, nil
}

type fakePayments struct {
	last *paytech.PaymentRequest
	err  error
}

func (p *fakePayments) CreatePayment(_ context.Context, req *paytech.PaymentRequest) (*paytech.PaymentResponse, error) {
	p.last = req
	if p.err != nil {
		return nil, p.err
	}
	return &paytech.PaymentResponse{RedirectURL: "https://paytech.sn/checkout/xyz"}, nil
}

var cfg = Config{WaveBaseURL: "https://pay.wave.com/m/M_sn_zCHJuLFd2WBm/c/sn/", Currency: "XOF"}

func hourlyReservation(status domain.ReservationStatus) *domain.Reservation {
	hours := 2
	return &domain.Reservation{
		ID:          resID,
		Name:        "Awa",
		Date:        time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		Slots:       []string{"09-10", "10-11"},
		Hours:       &hours,
		ServiceType: domain.ServiceHourly,
		TotalAmount: 60000,
		Status:      status,
	}
}

func TestExecute_HourlyDeposit(t *testing.T) {
	payments := &fakePayments{}
	uc := NewUseCase(fakeRepo{res: hourlyReservation(domain.StatusPending)}, payments, cfg, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: resID})
	require.NoError(t, err)

	assert.Equal(t, int64(30000), resp.Amount)
	assert.Equal(t, int64(60000), resp.TotalAmount)
	assert.Equal(t, "https://paytech.sn/checkout/xyz", resp.RedirectURL)

	wave, err := url.Parse(resp.WaveURL)
	require.NoError(t, err)
	assert.Equal(t, "60000", wave.Query().Get("amount"))

	require.NotNil(t, payments.last)
	assert.Equal(t, int64(30000), payments.last.Amount)
	assert.Equal(t, "Réservation Horaire - 09h00 - 11h00", payments.last.Description)
	assert.Equal(t, "mardi 20 octobre 2026", payments.last.Date)
	assert.Equal(t, "horaire", payments.last.ReservationData.ServiceType)
}

func TestExecute_MixFullAmount(t *testing.T) {
	titles := 3
	res := &domain.Reservation{ID: resID, Name: "Awa", ServiceType: domain.ServiceMix,
		TitleCount: &titles, TotalAmount: 450000, Status: domain.StatusConfirmed}
	payments := &fakePayments{}
	uc := NewUseCase(fakeRepo{res: res}, payments, cfg, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: resID})
	require.NoError(t, err)
	assert.Equal(t, int64(450000), resp.Amount)
	assert.Equal(t, "Mixage de Titre - 3 titres", payments.last.Description)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		repo     fakeRepo
		payments *fakePayments
		id       string
		wantErr  error
	}{
		{"bad id", fakeRepo{}, &fakePayments{}, "not-a-uuid", ErrInvalidInput},
		{"not found", fakeRepo{}, &fakePayments{}, resID, ErrReservationNotFound},
		{"repo failure", fakeRepo{err: errors.New("db down")}, &fakePayments{}, resID, ErrInternal},
		{"cancelled", fakeRepo{res: hourlyReservation(domain.StatusCancelled)}, &fakePayments{}, resID, ErrReservationCancelled},
		{"provider down", fakeRepo{res: hourlyReservation(domain.StatusPending)}, &fakePayments{err: paytech.ErrInvalidResponse}, resID, ErrPaymentUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.repo, tt.payments, cfg, logger.NewNop())
			_, err := uc.Execute(context.Background(), &Request{ReservationID: tt.id})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
