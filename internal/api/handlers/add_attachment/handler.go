package add_attachment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	requestsService "github.com/m04kA/SMC-QuoteService/internal/service/requests"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFileMeta    = "некорректные метаданные файла"
	msgRequestNotFound    = "заявка не найдена"
)

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

// Handle POST /api/v1/requests/{requestId}/attachments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["requestId"]

	var req AddAttachmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests/{requestId}/attachments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /requests/{requestId}/attachments - Invalid file meta for id=%s: %v", requestID, err)
		handlers.RespondBadRequest(w, msgInvalidFileMeta)
		return
	}

	if _, err := h.requests.GetByID(r.Context(), requestID); err != nil {
		if errors.Is(err, requestsService.ErrRequestNotFound) {
			h.logger.Warn("POST /requests/{requestId}/attachments - Request not found: id=%s", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("POST /requests/{requestId}/attachments - Failed to read request id=%s: %v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	attachment := h.service.Add(r.Context(), requestID, req.ToFileMeta())

	h.logger.Info("POST /requests/{requestId}/attachments - id=%s, attachment=%s", requestID, attachment.ID)
	handlers.RespondJSON(w, http.StatusCreated, attachment)
}
