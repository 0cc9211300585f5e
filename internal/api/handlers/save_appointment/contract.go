package save_appointment

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type AppointmentService interface {
	Save(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error)
}

type RequestService interface {
	GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
