package memory

import (
	"context"
	"encoding/json"
	"sync"
)

// Store in-memory реализация хранилища записей по ключу
// Используется в тестах и в демо-режиме без внешней БД
type Store struct {
	mu   sync.RWMutex
	data map[string][]json.RawMessage
}

// NewStore создает пустое in-memory хранилище
func NewStore() *Store {
	return &Store{
		data: make(map[string][]json.RawMessage),
	}
}

// ReadAll возвращает копию набора записей для ключа
// Отсутствующий ключ - пустой набор
func (s *Store) ReadAll(_ context.Context, key string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.data[key]
	out := make([]json.RawMessage, len(records))
	copy(out, records)
	return out, nil
}

// WriteAll перезаписывает набор записей для ключа
func (s *Store) WriteAll(_ context.Context, key string, records []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]json.RawMessage, len(records))
	copy(stored, records)
	s.data[key] = stored
	return nil
}
