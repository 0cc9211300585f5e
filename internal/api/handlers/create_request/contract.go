package create_request

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	createRequest "github.com/m04kA/SMC-QuoteService/internal/usecase/create_request"
)

type CreateRequestUseCase interface {
	Execute(ctx context.Context, req *createRequest.Request) (*domain.QuoteRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
