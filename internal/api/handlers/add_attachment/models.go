package add_attachment

import (
	"fmt"

	attachmentsService "github.com/m04kA/SMC-QuoteService/internal/service/attachments"
)

// AddAttachmentRequest HTTP request model
type AddAttachmentRequest struct {
	FileName   string  `json:"fileName"`
	FileType   string  `json:"fileType"`
	FileSizeKb int     `json:"fileSizeKb"`
	Note       *string `json:"note,omitempty"`
}

// Validate проверяет обязательные поля метаданных файла
func (r *AddAttachmentRequest) Validate() error {
	if r.FileName == "" {
		return fmt.Errorf("fileName is required")
	}
	if r.FileSizeKb < 0 {
		return fmt.Errorf("fileSizeKb must be non-negative")
	}
	return nil
}

// ToFileMeta преобразует HTTP модель в метаданные файла
func (r *AddAttachmentRequest) ToFileMeta() attachmentsService.FileMeta {
	return attachmentsService.FileMeta{
		FileName:   r.FileName,
		FileType:   r.FileType,
		FileSizeKb: r.FileSizeKb,
		Note:       r.Note,
	}
}
