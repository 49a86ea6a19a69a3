package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	createReservation "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeUseCase struct {
	resp *createReservation.Response
	err  error
	got  *createReservation.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	return f.resp, f.err
}

const hourlyBody = `{"serviceType":"hourly","date":"2026-10-20","slots":["09-10","10-11"],
	"name":"Awa","email":"awa@example.com","phone":"771234567"}`

func TestHandle_Created(t *testing.T) {
	hours := 2
	uc := &fakeUseCase{resp: &createReservation.Response{
		Reservation: &domain.Reservation{
			ID:          "6f1c7a3e-3f6b-4f0c-9a55-0d7c2b1a9e10",
			ServiceType: domain.ServiceHourly,
			Date:        time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
			Slots:       []string{"09-10", "10-11"},
			Hours:       &hours,
			TotalAmount: 60000,
			Status:      domain.StatusPending,
			CreatedAt:   time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
		},
		Description: "09h00 - 11h00",
		WaveURL:     "https://pay.wave.com/m/x/c/sn/?amount=60000",
		WhatsAppURL: "https://wa.me/221710162323",
		PhoneURL:    "tel:+221710162323",
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(hourlyBody)))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, domain.ServiceHourly, uc.got.ServiceType)
	assert.Equal(t, []string{"09-10", "10-11"}, uc.got.SlotIDs)
	assert.Equal(t, "Awa", uc.got.Contact.Name)

	var body ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(60000), body.TotalAmount)
	assert.Equal(t, "Réservation Horaire", body.ServiceName)
	assert.Equal(t, "09h00 - 11h00", body.Description)
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, "tel:+221710162323", body.Links.Phone)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bad json", `{`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"selection missing", hourlyBody, createReservation.ErrSelectionMissing, http.StatusBadRequest, msgSelectionMissing},
		{"titles missing", hourlyBody, createReservation.ErrTitlesMissing, http.StatusBadRequest, msgTitlesMissing},
		{"contact missing", hourlyBody, createReservation.ErrContactMissing, http.StatusBadRequest, msgContactMissing},
		{"conflict", hourlyBody, createReservation.ErrSlotNotAvailable, http.StatusConflict, msgSlotNotAvailable},
		{"too late", hourlyBody, createReservation.ErrTooLateToBook, http.StatusBadRequest, msgTooLateToBook},
		{"closed", hourlyBody, createReservation.ErrStudioClosed, http.StatusBadRequest, msgClosed},
		{"store failure", hourlyBody, errors.Join(createReservation.ErrInternal, errors.New("db down")), http.StatusInternalServerError, msgSaveFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}
