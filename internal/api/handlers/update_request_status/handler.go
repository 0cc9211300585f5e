package update_request_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/domain"
	requestsService "github.com/m04kA/SMC-QuoteService/internal/service/requests"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимый статус заявки"
	msgRequestNotFound    = "заявка не найдена"
)

type Handler struct {
	service RequestService
	logger  Logger
}

func NewHandler(service RequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/requests/{requestId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /requests/{requestId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.UpdateStatus(r.Context(), requestID, domain.RequestStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, requestsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /requests/{requestId}/status - Invalid status %q for id=%s", req.Status, requestID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, requestsService.ErrRequestNotFound):
			h.logger.Warn("PATCH /requests/{requestId}/status - Request not found: id=%s", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		default:
			h.logger.Error("PATCH /requests/{requestId}/status - Failed for id=%s: %v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	updated, err := h.service.GetByID(r.Context(), requestID)
	if err != nil {
		h.logger.Error("PATCH /requests/{requestId}/status - Failed to reread id=%s: %v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /requests/{requestId}/status - id=%s, status=%s", requestID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
