package save_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	appointmentsService "github.com/m04kA/SMC-QuoteService/internal/service/appointments"
	requestsService "github.com/m04kA/SMC-QuoteService/internal/service/requests"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "некорректные дата или время встречи"
	msgRequestNotFound    = "заявка не найдена"
)

type Handler struct {
	service  AppointmentService
	requests RequestService
	logger   Logger
}

func NewHandler(service AppointmentService, requests RequestService, logger Logger) *Handler {
	return &Handler{
		service:  service,
		requests: requests,
		logger:   logger,
	}
}

// Handle PUT /api/v1/requests/{requestId}/appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	var req SaveAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /requests/{requestId}/appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if _, err := h.requests.GetByID(r.Context(), requestID); err != nil {
		if errors.Is(err, requestsService.ErrRequestNotFound) {
			h.logger.Warn("PUT /requests/{requestId}/appointment - Request not found: id=%s", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("PUT /requests/{requestId}/appointment - Failed to read request id=%s: %v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	saved, err := h.service.Save(r.Context(), req.ToAppointment(requestID))
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidDate),
			errors.Is(err, appointmentsService.ErrInvalidTime):
			h.logger.Warn("PUT /requests/{requestId}/appointment - Invalid slot for id=%s: %v", requestID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("PUT /requests/{requestId}/appointment - Failed for id=%s: %v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /requests/{requestId}/appointment - id=%s, date=%s, time=%s", requestID, saved.Date, saved.Time)
	handlers.RespondJSON(w, http.StatusOK, saved)
}
