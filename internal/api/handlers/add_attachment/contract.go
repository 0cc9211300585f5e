package add_attachment

import (
	"context"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	attachmentsService "github.com/m04kA/SMC-QuoteService/internal/service/attachments"
)

type AttachmentService interface {
	Add(ctx context.Context, requestID string, meta attachmentsService.FileMeta) domain.Attachment
}

type RequestService interface {
	GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
