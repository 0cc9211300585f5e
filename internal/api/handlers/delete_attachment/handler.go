package delete_attachment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	requestsService "github.com/m04kA/SMC-QuoteService/internal/service/requests"
)

const (
	msgRequestNotFound    = "заявка не найдена"
	msgAttachmentNotFound = "вложение не найдено"
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

// Handle DELETE /api/v1/requests/{requestId}/attachments/{attachmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := vars["requestId"]
	attachmentID := vars["attachmentId"]

	if _, err := h.requests.GetByID(r.Context(), requestID); err != nil {
		if errors.Is(err, requestsService.ErrRequestNotFound) {
			h.logger.Warn("DELETE /requests/{requestId}/attachments/{attachmentId} - Request not found: id=%s", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)
			return
		}
		h.logger.Error("DELETE /requests/{requestId}/attachments/{attachmentId} - Failed to read request id=%s: %v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	found := false
	for _, a := range h.service.GetForRequest(r.Context(), requestID) {
		if a.ID == attachmentID {
			found = true
			break
		}
	}
	if !found {
		h.logger.Warn("DELETE /requests/{requestId}/attachments/{attachmentId} - Attachment not found: id=%s, attachment=%s",
			requestID, attachmentID)
		handlers.RespondNotFound(w, msgAttachmentNotFound)
		return
	}

	h.service.Remove(r.Context(), requestID, attachmentID)

	h.logger.Info("DELETE /requests/{requestId}/attachments/{attachmentId} - id=%s, attachment=%s", requestID, attachmentID)
	w.WriteHeader(http.StatusNoContent)
}
