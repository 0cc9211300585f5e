package delete_attachment

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

type AttachmentService interface {
	GetForRequest(ctx context.Context, requestID string) []domain.Attachment
	Remove(ctx context.Context, requestID, attachmentID string)
}

type RequestService interface {
	GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
