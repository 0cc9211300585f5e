package requests

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// RecordStore интерфейс хранилища записей по ключу
type RecordStore interface {
	ReadAll(ctx context.Context, key string) ([]json.RawMessage, error)
	WriteAll(ctx context.Context, key string, records []json.RawMessage) error
}

// ActivityLog интерфейс журнала событий
// Сервису нужна только запись о смене статуса - остальные события
// пишут владельцы соответствующих операций
type ActivityLog interface {
	LogStatusChange(ctx context.Context, requestID string, from, to domain.RequestStatus)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
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
