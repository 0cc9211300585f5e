package get_requests

import (
	"net/http"

	"github.com/m04kA/SMC-QuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-QuoteService/internal/domain"
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

// ListResponse HTTP response model
type ListResponse struct {
	Requests []domain.QuoteRequest `json:"requests"`
	Total    int                   `json:"total"`
}

// Handle GET /api/v1/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items := h.service.GetAll(r.Context())

	h.logger.Info("GET /requests - Returned %d requests", len(items))
	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Requests: items,
		Total:    len(items),
	})
}
