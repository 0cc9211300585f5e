package get_activity

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type ActivityLog interface {
	GetEventsForRequest(ctx context.Context, requestID string) []domain.ActivityEvent
}

type RequestService interface {
	GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
