package get_request

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	requestsService "github.com/m04kA/SMC-QuoteService/internal/service/requests"
)

const (
	msgRequestNotFound = "заявка не найдена"
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

// Handle GET /api/v1/requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	result, err := h.service.GetByID(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, requestsService.ErrRequestNotFound) {
			h.logger.Warn("GET /requests/{requestId} - Request not found: id=%s", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("GET /requests/{requestId} - Failed to get request id=%s: %v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
