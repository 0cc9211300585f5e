package save_appointment

import (
	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// SaveAppointmentRequest HTTP request model
type SaveAppointmentRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ToAppointment преобразует HTTP модель в доменную встречу
func (r *SaveAppointmentRequest) ToAppointment(requestID string) domain.Appointment {
	return domain.Appointment{
		RequestID: requestID,
		Date:      r.Date,
		Time:      types.TimeString(r.Time),
	}
}
