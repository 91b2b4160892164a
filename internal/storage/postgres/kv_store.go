// Пакет postgres — KV-хранилище корзины в PostgreSQL (pgxpool).
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/storefront/internal/ports"
)

// Проверка, что KVStore удовлетворяет интерфейсу KVStorage.
var _ ports.KVStorage = (*KVStore)(nil)

// KVStore — таблица kv_store (см. migrations).
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore — конструктор KVStore.
func NewKVStore(pool *pgxpool.Pool) *KVStore { return &KVStore{pool: pool} }

// Get — значение по ключу; отсутствие строки не ошибка.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select kv %q: %w", key, err)
	}
	return value, true, nil
}

// Set — upsert по ключу (PRIMARY KEY).
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO kv_store (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()
	`, key, value); err != nil {
		return fmt.Errorf("upsert kv %q: %w", key, err)
	}
	return nil
}
