package get_available_slots

import (
	"context"

	slotsUseCase "github.com/m04kA/SMC-QuoteService/internal/usecase/get_available_slots"
)

type SlotsUseCase interface {
	Execute(ctx context.Context, req *slotsUseCase.Request) (*slotsUseCase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
