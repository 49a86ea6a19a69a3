package paytech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
)

func TestCreatePayment_OK(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(PaymentResponse{RedirectURL: "https://paytech.sn/checkout/abc"})
	}))
	defer srv.Close()

	hours := 2
	res := &domain.Reservation{
		Name:        "Awa",
		Email:       "awa@example.com",
		Phone:       "+221770000000",
		Date:        time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		Slots:       []string{"09-10", "10-11"},
		Hours:       &hours,
		TotalAmount: 60000,
		ServiceType: domain.ServiceHourly,
	}

	c := NewClient(srv.URL, time.Second, logger.NewNop())
	resp, err := c.CreatePayment(context.Background(), &PaymentRequest{
		Amount:          30000,
		Description:     "Réservation Horaire - 09h00 - 11h00",
		Name:            "Awa",
		Date:            "mardi 20 octobre 2026",
		ReservationData: FromReservation(res),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://paytech.sn/checkout/abc", resp.RedirectURL)

	assert.Equal(t, float64(30000), got["amount"])
	data := got["reservationData"].(map[string]interface{})
	assert.Equal(t, "horaire", data["type_service"])
	assert.Equal(t, "2026-10-20", data["date_reservation"])
	assert.Equal(t, float64(2), data["duree_heures"])
	assert.Nil(t, data["nombre_titres"])
}

func TestCreatePayment_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, "boom", ErrInvalidResponse},
		{"bad json", http.StatusOK, "{", ErrInvalidResponse},
		{"no redirect", http.StatusOK, `{"message":"montant invalide"}`, ErrPaymentRejected},
		{"error flag", http.StatusOK, `{"error":true,"redirectUrl":"x"}`, ErrPaymentRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, logger.NewNop())
			_, err := c.CreatePayment(context.Background(), &PaymentRequest{Amount: 1})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreatePayment_Unreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1/create-payment", 100*time.Millisecond, logger.NewNop())
	_, err := c.CreatePayment(context.Background(), &PaymentRequest{Amount: 1})
	assert.ErrorIs(t, err, ErrInternal)
}
