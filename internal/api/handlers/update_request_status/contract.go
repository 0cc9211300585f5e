package update_request_status

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type RequestService interface {
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
	GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
