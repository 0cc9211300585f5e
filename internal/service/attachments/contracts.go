package attachments

import (
	"context"
	"encoding/json"
	"time"
)

// RecordStore интерфейс хранилища записей по ключу
type RecordStore interface {
	ReadAll(ctx context.Context, key string) ([]json.RawMessage, error)
	WriteAll(ctx context.Context, key string, records []json.RawMessage) error
}

// ActivityLog интерфейс журнала событий
type ActivityLog interface {
	LogAttachmentAdded(ctx context.Context, requestID, fileName string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator интерфейс для генерации идентификаторов вложений
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
