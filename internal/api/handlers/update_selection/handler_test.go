package update_selection

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	updateSelection "github.com/m04kA/SMC-StudioBooking/internal/usecase/update_selection"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeUseCase struct {
	resp *updateSelection.Response
	err  error
	got  *updateSelection.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateSelection.Request) (*updateSelection.Response, error) {
	f.got = req
	return f.resp, f.err
}

const toggleBody = `{"state":{"serviceType":"hourly","date":"2026-10-20","slots":["09-10"],"titleCount":1},
	"action":{"type":"toggle_slot","slotId":"10-11"}}`

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &updateSelection.Response{
		State: updateSelection.State{
			ServiceType: domain.ServiceHourly,
			Date:        "2026-10-20",
			SlotIDs:     []string{"09-10", "10-11"},
			TitleCount:  1,
		},
		Total:       60000,
		Currency:    "XOF",
		Description: "09h00 - 11h00",
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/selection", strings.NewReader(toggleBody)))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, updateSelection.ActionToggleSlot, uc.got.Action.Type)
	assert.Equal(t, "10-11", uc.got.Action.SlotID)
	assert.Equal(t, []string{"09-10"}, uc.got.State.SlotIDs)

	var body UpdateSelectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(60000), body.Total)
	assert.Equal(t, "09h00 - 11h00", body.Description)
	assert.Equal(t, []string{"09-10", "10-11"}, body.State.SlotIDs)
}

func TestHandle_EmptyStateDefaultsToHourly(t *testing.T) {
	uc := &fakeUseCase{resp: &updateSelection.Response{State: updateSelection.State{ServiceType: domain.ServiceMix, TitleCount: 1}}}
	h := NewHandler(uc, logger.NewNop())

	body := `{"state":{},"action":{"type":"set_service_type","serviceType":"mix"}}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/selection", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ServiceHourly, uc.got.State.ServiceType)
	assert.Equal(t, domain.ServiceMix, uc.got.Action.ServiceType)

	var resp UpdateSelectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{}, resp.State.SlotIDs)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid state", updateSelection.ErrInvalidState, http.StatusBadRequest},
		{"invalid action", updateSelection.ErrInvalidAction, http.StatusBadRequest},
		{"date required", updateSelection.ErrDateRequired, http.StatusBadRequest},
		{"invalid date", updateSelection.ErrInvalidDate, http.StatusBadRequest},
		{"slot taken", updateSelection.ErrSlotNotAvailable, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/selection", strings.NewReader(toggleBody)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
