package create_request

import (
	createRequest "github.com/m04kA/SMC-QuoteService/internal/usecase/create_request"
)

// CreateRequestRequest HTTP request model
type CreateRequestRequest struct {
	ServiceType       string  `json:"serviceType"`
	CustomerName      string  `json:"customerName"`
	CustomerEmail     string  `json:"customerEmail"`
	CustomerPhone     *string `json:"customerPhone,omitempty"`
	AddressLine1      string  `json:"addressLine1"`
	AddressLine2      *string `json:"addressLine2,omitempty"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	Zip               string  `json:"zip"`
	Details           string  `json:"details"`
	PreferredDateFrom *string `json:"preferredDateFrom,omitempty"` // "2025-10-15"
	PreferredDateTo   *string `json:"preferredDateTo,omitempty"`   // "2025-10-20"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRequestRequest) ToUseCaseRequest() *createRequest.Request {
	return &createRequest.Request{
		ServiceType:       r.ServiceType,
		CustomerName:      r.CustomerName,
		CustomerEmail:     r.CustomerEmail,
		CustomerPhone:     r.CustomerPhone,
		AddressLine1:      r.AddressLine1,
		AddressLine2:      r.AddressLine2,
		City:              r.City,
		State:             r.State,
		Zip:               r.Zip,
		Details:           r.Details,
		PreferredDateFrom: r.PreferredDateFrom,
		PreferredDateTo:   r.PreferredDateTo,
	}
}
