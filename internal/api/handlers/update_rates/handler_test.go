package update_rates

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/service/rates"
	"github.com/m04kA/SMC-StudioBooking/internal/service/rates/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeService struct {
	got *models.UpdateRatesRequest
	err error
}

func (f *fakeService) Update(_ context.Context, req *models.UpdateRatesRequest) (*models.RatesResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.RatesResponse{Currency: "XOF", Hourly: *req.Hourly, Mix: 150000, Master: 70000}, nil
}

func TestHandle_PartialUpdate(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/rates", strings.NewReader(`{"hourly":35000}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.Hourly)
	assert.Equal(t, int64(35000), *svc.got.Hourly)
	assert.Nil(t, svc.got.Mix)
	assert.Contains(t, rec.Body.String(), `"hourly":35000`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"bad json", `{"hourly":"cheap"}`, nil, http.StatusBadRequest},
		{"invalid rates", `{"hourly":0}`, fmt.Errorf("%w: hourly must be positive", rates.ErrInvalidInput), http.StatusBadRequest},
		{"internal", `{"hourly":1}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/rates", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
