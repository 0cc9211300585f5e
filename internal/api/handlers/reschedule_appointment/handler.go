package reschedule_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	appointmentsService "github.com/m04kA/SMC-QuoteService/internal/service/appointments"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidSlot         = "некорректные дата или время встречи"
	msgAppointmentNotFound = "живая встреча для заявки не найдена"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests/{requestId}/appointment/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests/{requestId}/appointment/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Reschedule(r.Context(), requestID, req.Date, types.TimeString(req.Time))
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidDate),
			errors.Is(err, appointmentsService.ErrInvalidTime):
			h.logger.Warn("POST /requests/{requestId}/appointment/reschedule - Invalid slot for id=%s: %v", requestID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("POST /requests/{requestId}/appointment/reschedule - No live appointment for id=%s", requestID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("POST /requests/{requestId}/appointment/reschedule - Failed for id=%s: %v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests/{requestId}/appointment/reschedule - id=%s, date=%s, time=%s",
		requestID, updated.Date, updated.Time)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
