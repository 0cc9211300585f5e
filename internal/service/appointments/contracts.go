package appointments

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// RecordStore интерфейс хранилища записей по ключу
type RecordStore interface {
	ReadAll(ctx context.Context, key string) ([]json.RawMessage, error)
	WriteAll(ctx context.Context, key string, records []json.RawMessage) error
}

// RequestLifecycle интерфейс хранилища жизненного цикла заявок
// Встреча и заявка поддерживаются согласованными порядком вызовов:
// после каждой мутации встречи сервис сообщает об этом заявке
type RequestLifecycle interface {
	AttachAppointment(ctx context.Context, requestID string, appointment domain.Appointment) error
	DetachAppointment(ctx context.Context, requestID string) error
}

// ActivityLog интерфейс журнала событий
type ActivityLog interface {
	LogAppointmentBooked(ctx context.Context, requestID, date string, t types.TimeString)
	LogAppointmentRescheduled(ctx context.Context, requestID, oldDate string, oldTime types.TimeString, newDate string, newTime types.TimeString)
	LogAppointmentCanceled(ctx context.Context, requestID string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Sleeper интерфейс симуляции задержки удаленного вызова
// Операции не поддерживают отмену: начатая операция завершается по
// собственному расписанию, поэтому Sleep не принимает контекст
type Sleeper interface {
	Sleep(d time.Duration)
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

// RealSleeper реальная задержка для production
type RealSleeper struct{}

// Sleep блокирует вызывающую горутину на d
func (s *RealSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}

// NoopSleeper отключенная задержка (тесты и демо-режим)
type NoopSleeper struct{}

// Sleep ничего не делает
func (s *NoopSleeper) Sleep(time.Duration) {}
