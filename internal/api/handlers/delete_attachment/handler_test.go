package delete_attachment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	requestsService "github.com/m04kA/SMC-QuoteService/internal/service/requests"
)

type fakeAttachmentService struct {
	items   []domain.Attachment
	removed []string
}

func (f *fakeAttachmentService) GetForRequest(_ context.Context, requestID string) []domain.Attachment {
	out := make([]domain.Attachment, 0)
	for _, a := range f.items {
		if a.RequestID == requestID {
			out = append(out, a)
		}
	}
	return out
}

func (f *fakeAttachmentService) Remove(_ context.Context, _, attachmentID string) {
	f.removed = append(f.removed, attachmentID)
}

type fakeRequestService struct {
	known map[string]bool
}

func (f *fakeRequestService) GetByID(_ context.Context, id string) (*domain.QuoteRequest, error) {
	if f.known[id] {
		return &domain.QuoteRequest{ID: id}, nil
	}
	return nil, requestsService.ErrRequestNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, requestID, attachmentID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete,
		"/api/v1/requests/"+requestID+"/attachments/"+attachmentID, nil)
	req = mux.SetURLVars(req, map[string]string{
		"requestId":    requestID,
		"attachmentId": attachmentID,
	})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_RemovesAttachment(t *testing.T) {
	attachments := &fakeAttachmentService{
		items: []domain.Attachment{{ID: "ATT-0001", RequestID: "REQ-2025-0001"}},
	}
	h := NewHandler(attachments, &fakeRequestService{known: map[string]bool{"REQ-2025-0001": true}}, nopLogger{})

	rec := doRequest(h, "REQ-2025-0001", "ATT-0001")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"ATT-0001"}, attachments.removed)
}

func TestHandle_UnknownRequest(t *testing.T) {
	attachments := &fakeAttachmentService{}
	h := NewHandler(attachments, &fakeRequestService{known: map[string]bool{}}, nopLogger{})

	rec := doRequest(h, "REQ-2025-0099", "ATT-0001")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, attachments.removed)
}

func TestHandle_UnknownAttachment(t *testing.T) {
	attachments := &fakeAttachmentService{
		items: []domain.Attachment{{ID: "ATT-0001", RequestID: "REQ-2025-0001"}},
	}
	h := NewHandler(attachments, &fakeRequestService{known: map[string]bool{"REQ-2025-0001": true}}, nopLogger{})

	rec := doRequest(h, "REQ-2025-0001", "ATT-0002")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, attachments.removed)
}
