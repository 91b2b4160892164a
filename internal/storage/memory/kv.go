// Пакет memory — KV-хранилище в памяти процесса (данные теряются при перезапуске).
package memory

import (
	"context"
	"sync"
)

// KVStore — потокобезопасная map[string]string.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKVStore — пустое хранилище.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

// Get — значение по ключу.
func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set — перезаписать значение.
func (s *KVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
