package get_requests

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type RequestService interface {
	GetAll(ctx context.Context) []domain.QuoteRequest
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
