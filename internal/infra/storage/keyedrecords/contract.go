package keyedrecords

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения SQL запросов
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// MetricsObserver интерфейс для записи метрик операций хранилища
// nil отключает сбор метрик
type MetricsObserver interface {
	ObserveStoreOp(operation, key, result string, seconds float64)
}
