package domain

import "time"

// EventType represents the kind of an activity event
type EventType string

const (
	EventCreated                EventType = "created"
	EventStatusChange           EventType = "status-change"
	EventAppointmentBooked      EventType = "appointment-booked"
	EventAppointmentRescheduled EventType = "appointment-rescheduled"
	EventAppointmentCanceled    EventType = "appointment-canceled"
	EventQuoteCreated           EventType = "quote-created"
	EventNote                   EventType = "note"
	EventAttachmentAdded        EventType = "attachment-added"
)

// EventMetadata optional structured details attached to an activity event
type EventMetadata struct {
	FromStatus      *string `json:"fromStatus,omitempty"`
	ToStatus        *string `json:"toStatus,omitempty"`
	AppointmentDate *string `json:"appointmentDate,omitempty"`
	AppointmentTime *string `json:"appointmentTime,omitempty"`
	FileName        *string `json:"fileName,omitempty"`
}

// ActivityEvent represents an immutable audit-trail entry for a quote request
// Events are never mutated or deleted; display ordering is by timestamp ascending
type ActivityEvent struct {
	ID        string         `json:"id"`
	RequestID string         `json:"requestId"`
	Type      EventType      `json:"type"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  *EventMetadata `json:"metadata,omitempty"`
}
