package domain

import "time"

// RequestStatus represents the lifecycle status of a quote request
type RequestStatus string

const (
	StatusSubmitted RequestStatus = "Submitted"
	StatusInReview  RequestStatus = "In Review"
	StatusScheduled RequestStatus = "Scheduled"
	StatusQuoted    RequestStatus = "Quoted"
	StatusClosed    RequestStatus = "Closed"
)

// ValidRequestStatuses all statuses a request may hold
var ValidRequestStatuses = []RequestStatus{
	StatusSubmitted,
	StatusInReview,
	StatusScheduled,
	StatusQuoted,
	StatusClosed,
}

// IsValid returns true if the status is one of the known request statuses
func (s RequestStatus) IsValid() bool {
	for _, v := range ValidRequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// QuoteRequest represents a customer-submitted service inquiry
// Requests are never physically deleted; the status field tracks the lifecycle
type QuoteRequest struct {
	ID                string        `json:"id"`
	ServiceType       string        `json:"serviceType"`
	CustomerName      string        `json:"customerName"`
	CustomerEmail     string        `json:"customerEmail"`
	CustomerPhone     *string       `json:"customerPhone,omitempty"`
	AddressLine1      string        `json:"addressLine1"`
	AddressLine2      *string       `json:"addressLine2,omitempty"`
	City              string        `json:"city"`
	State             string        `json:"state"`
	Zip               string        `json:"zip"`
	Details           string        `json:"details"`
	PreferredDateFrom *string       `json:"preferredDateFrom,omitempty"` // yyyy-mm-dd
	PreferredDateTo   *string       `json:"preferredDateTo,omitempty"`   // yyyy-mm-dd
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         *time.Time    `json:"updatedAt,omitempty"`
	Status            RequestStatus `json:"status"`
	Appointment       *Appointment  `json:"appointment,omitempty"`
}

// IsScheduled returns true if the request currently has a scheduled appointment
func (r *QuoteRequest) IsScheduled() bool {
	return r.Status == StatusScheduled
}

// CanAutoPromote returns true if attaching an appointment should promote the
// request to Scheduled. Quoted and Closed are final-ish and never reverted
func (r *QuoteRequest) CanAutoPromote() bool {
	return r.Status == StatusSubmitted || r.Status == StatusInReview
}
