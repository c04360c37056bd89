package get_available_masters

import (
	"context"

	getAvailableMasters "github.com/bsmobile/salon-booking/internal/usecase/get_available_masters"
)

type GetAvailableMastersUseCase interface {
	Execute(ctx context.Context, req *getAvailableMasters.Request) (*getAvailableMasters.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
