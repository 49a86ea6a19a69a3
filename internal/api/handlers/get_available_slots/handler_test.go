package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
	got  *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestHandle_OK(t *testing.T) {
	slot, ok := domain.LookupSlot("09-10")
	require.True(t, ok)

	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:  "2026-10-20",
		Slots: []domain.SlotWithStatus{{TimeSlot: slot, Status: domain.SlotBooked}},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2026-10-20", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-10-20", uc.got.Date)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Slots, 1)
	assert.Equal(t, AvailableSlot{ID: "09-10", Label: "09h00 - 10h00", Status: "booked"}, body.Slots[0])
	assert.False(t, body.Degraded)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		err        error
		wantStatus int
	}{
		{"missing date", "/api/v1/slots", nil, http.StatusBadRequest},
		{"invalid date", "/api/v1/slots?date=x", getAvailableSlots.ErrInvalidDate, http.StatusBadRequest},
		{"past", "/api/v1/slots?date=2026-10-01", getAvailableSlots.ErrDateInPast, http.StatusBadRequest},
		{"closed", "/api/v1/slots?date=2026-10-25", getAvailableSlots.ErrStudioClosed, http.StatusBadRequest},
		{"too far", "/api/v1/slots?date=2027-01-01", getAvailableSlots.ErrDateTooFarInFuture, http.StatusBadRequest},
		{"unexpected", "/api/v1/slots?date=2026-10-20", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
