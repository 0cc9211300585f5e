package get_available_slots

import "time"

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Нужен только для пометки прошедших слотов сегодняшнего дня -
// единственное намеренное исключение из детерминизма расчета
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
