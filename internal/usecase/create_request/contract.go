package create_request

import (
	"context"
	"math/rand"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// RequestRepository интерфейс хранилища заявок
// Intake сохраняет заявки только через него - у ключа quote_requests
// ровно один владелец
type RequestRepository interface {
	GetAll(ctx context.Context) []domain.QuoteRequest
	Save(ctx context.Context, request domain.QuoteRequest) error
}

// ActivityLog интерфейс журнала событий
type ActivityLog interface {
	LogCreated(ctx context.Context, requestID string, timestamp time.Time)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Rand источник псевдослучайности симуляции сбоев и джиттера задержки
type Rand interface {
	Float64() float64
}

// Sleeper интерфейс симуляции задержки удаленного вызова
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

// RealRand глобальный math/rand источник для production
type RealRand struct{}

// Float64 возвращает псевдослучайное число в [0, 1)
func (r *RealRand) Float64() float64 {
	return rand.Float64()
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
