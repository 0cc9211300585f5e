package reschedule_appointment

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

type AppointmentService interface {
	Reschedule(ctx context.Context, requestID string, newDate string, newTime types.TimeString) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
