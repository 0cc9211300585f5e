package keyedmutex

import "sync"

// KeyedMutex набор именованных мьютексов
// Сериализует последовательности read-modify-write по ключу хранилища:
// две операции над одним ключом не могут перекрываться, операции над
// разными ключами выполняются параллельно
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New создает новый набор именованных мьютексов
func New() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock блокирует мьютекс для указанного ключа
func (k *KeyedMutex) Lock(key string) {
	k.get(key).Lock()
}

// Unlock разблокирует мьютекс для указанного ключа
func (k *KeyedMutex) Unlock(key string) {
	k.get(key).Unlock()
}

func (k *KeyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
