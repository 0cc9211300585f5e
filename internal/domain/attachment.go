package domain

import "time"

// Attachment metadata-only record of an uploaded file
// No file bytes are stored anywhere in the system
type Attachment struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"requestId"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileSizeKb int       `json:"fileSizeKb"`
	UploadedAt time.Time `json:"uploadedAt"`
	Note       *string   `json:"note,omitempty"`
}
