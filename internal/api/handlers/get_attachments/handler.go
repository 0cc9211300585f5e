package get_attachments

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

// ListResponse HTTP модель списка вложений заявки
type ListResponse struct {
	Attachments []domain.Attachment `json:"attachments"`
	Total       int                 `json:"total"`
}

type Handler struct {
	service  AttachmentService
	requests RequestService
	logger   Logger
}

func NewHandler(service AttachmentService, requests RequestService, logger Logger) *Handler {
	return &Handler{
		service:  service,
		requests: requests,
		logger:   logger,
	}
}

// Handle GET /api/v1/requests/{requestId}/attachments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	if _, err := h.requests.GetByID(r.Context(), requestID); err != nil {
		if errors.Is(err, requestsService.ErrRequestNotFound) {
			h.logger.Warn("GET /requests/{requestId}/attachments - Request not found: id=%s", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("GET /requests/{requestId}/attachments - Failed to read request id=%s: %v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	items := h.service.GetForRequest(r.Context(), requestID)

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Attachments: items,
		Total:       len(items),
	})
}
