package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	appointmentsService "github.com/m04kA/SMC-QuoteService/internal/service/appointments"
)

const (
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

// Handle DELETE /api/v1/requests/{requestId}/appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	err := h.service.Cancel(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, appointmentsService.ErrAppointmentNotFound) {
			h.logger.Warn("DELETE /requests/{requestId}/appointment - No live appointment for id=%s", requestID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
			return
		}
		h.logger.Error("DELETE /requests/{requestId}/appointment - Failed for id=%s: %v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /requests/{requestId}/appointment - id=%s", requestID)
	w.WriteHeader(http.StatusNoContent)
}
