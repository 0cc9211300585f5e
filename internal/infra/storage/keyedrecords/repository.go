package keyedrecords

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-QuoteService/pkg/psqlbuilder"
)

// Repository хранилище упорядоченных наборов JSON записей по строковому ключу
// Каждый ключ хранится одной строкой таблицы keyed_records с JSONB массивом;
// чтение и запись всегда оперируют полным набором записей ключа
type Repository struct {
	db      DBExecutor
	metrics MetricsObserver
}

// NewRepository создает новый экземпляр хранилища записей
// metrics может быть nil - тогда метрики не собираются
func NewRepository(db DBExecutor, metrics MetricsObserver) *Repository {
	return &Repository{db: db, metrics: metrics}
}

// ReadAll читает полный набор записей для ключа
// Отсутствующий ключ - не ошибка, возвращается пустой набор
func (r *Repository) ReadAll(ctx context.Context, key string) ([]json.RawMessage, error) {
	start := time.Now()

	query, args, err := psqlbuilder.Select("records").
		From("keyed_records").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReadAll - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		r.observe("read", key, "ok", start)
		return []json.RawMessage{}, nil
	}
	if err != nil {
		r.observe("read", key, "error", start)
		return nil, fmt.Errorf("%w: ReadAll - scan records: %v", ErrScanRow, err)
	}

	records := make([]json.RawMessage, 0)
	if err := json.Unmarshal(raw, &records); err != nil {
		r.observe("read", key, "error", start)
		return nil, fmt.Errorf("%w: ReadAll - unmarshal records: %v", ErrDecode, err)
	}

	r.observe("read", key, "ok", start)
	return records, nil
}

// WriteAll перезаписывает полный набор записей для ключа (upsert)
func (r *Repository) WriteAll(ctx context.Context, key string, records []json.RawMessage) error {
	start := time.Now()

	if records == nil {
		records = []json.RawMessage{}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: WriteAll - marshal records: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("keyed_records").
		Columns("key", "records", "updated_at").
		Values(key, raw, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET records = EXCLUDED.records, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: WriteAll - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.observe("write", key, "error", start)
		return fmt.Errorf("%w: WriteAll - execute upsert: %v", ErrExecQuery, err)
	}

	r.observe("write", key, "ok", start)
	return nil
}

func (r *Repository) observe(operation, key, result string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveStoreOp(operation, key, result, time.Since(start).Seconds())
}
