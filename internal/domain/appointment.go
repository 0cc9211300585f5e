package domain

import (
	"time"

	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentBooked   AppointmentStatus = "booked"
	AppointmentCanceled AppointmentStatus = "canceled"
)

// Appointment represents a scheduled meeting tied to exactly one quote request
// For a given request id there is at most one live (booked) appointment at any
// time; rescheduling mutates that record in place, cancellation keeps the dead
// record for history
type Appointment struct {
	RequestID string            `json:"requestId"`
	Date      string            `json:"date"` // yyyy-mm-dd
	Time      types.TimeString  `json:"time"` // HH:MM, 30-minute granularity
	Status    AppointmentStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt *time.Time        `json:"updatedAt,omitempty"`
}

// IsLive returns true if the appointment is booked (not canceled)
func (a *Appointment) IsLive() bool {
	return a.Status == AppointmentBooked
}
