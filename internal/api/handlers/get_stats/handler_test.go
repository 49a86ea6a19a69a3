package get_stats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

type fakeService struct {
	resp *models.StatsResponse
	err  error
}

func (f fakeService) Stats(context.Context) (*models.StatsResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	h := NewHandler(fakeService{resp: &models.StatsResponse{
		Period: "octobre 2026", Count: 3, TotalHours: 5, Revenue: 300000, Currency: "XOF",
	}}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"period":"octobre 2026","count":3,"totalHours":5,"revenue":300000,"currency":"XOF"}`,
		rec.Body.String())
}

func TestHandle_Error(t *testing.T) {
	h := NewHandler(fakeService{err: errors.New("boom")}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
