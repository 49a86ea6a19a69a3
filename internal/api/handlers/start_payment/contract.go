package start_payment

import (
	"context"

	startPayment "github.com/m04kA/SMC-StudioBooking/internal/usecase/start_payment"
)

type StartPaymentUseCase interface {
	Execute(ctx context.Context, req *startPayment.Request) (*startPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
