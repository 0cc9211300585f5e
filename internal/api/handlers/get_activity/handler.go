package get_activity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/domain"
	requestsService "github.com/m04kA/SMC-QuoteService/internal/service/requests"
)

const (
	msgRequestNotFound = "заявка не найдена"
)

// ListResponse HTTP модель списка событий заявки
type ListResponse struct {
	Events []domain.ActivityEvent `json:"events"`
	Total  int                    `json:"total"`
}

type Handler struct {
	activityLog ActivityLog
	requests    RequestService
	logger      Logger
}

func NewHandler(activityLog ActivityLog, requests RequestService, logger Logger) *Handler {
	return &Handler{
		activityLog: activityLog,
		requests:    requests,
		logger:      logger,
	}
}

// Handle GET /api/v1/requests/{requestId}/activity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	if _, err := h.requests.GetByID(r.Context(), requestID); err != nil {
		if errors.Is(err, requestsService.ErrRequestNotFound) {
			h.logger.Warn("GET /requests/{requestId}/activity - Request not found: id=%s", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("GET /requests/{requestId}/activity - Failed to read request id=%s: %v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	events := h.activityLog.GetEventsForRequest(r.Context(), requestID)

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Events: events,
		Total:  len(events),
	})
}
