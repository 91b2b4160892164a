// Пакет redis — KV-хранилище корзины в Redis (go-redis/v8).
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
)

// KVStore — строковые ключи Redis без срока жизни.
type KVStore struct {
	client *goredis.Client
}

// NewClient — клиент по строке "redis://..." или простому "host:port".
func NewClient(addr, password string) *goredis.Client {
	opts, err := goredis.ParseURL(addr)
	if err != nil {
		// не URL — считаем адресом host:port
		opts = &goredis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
		}
	}
	if password != "" {
		opts.Password = password
	}
	return goredis.NewClient(opts)
}

// Connect — клиент и Ping для fail-fast.
func Connect(ctx context.Context, addr, password string) (*KVStore, error) {
	client := NewClient(addr, password)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewKVStore(client), nil
}

// NewKVStore — хранилище поверх готового клиента.
func NewKVStore(client *goredis.Client) *KVStore {
	return &KVStore{client: client}
}

// Get — значение по ключу; redis.Nil означает отсутствие ключа.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return v, true, nil
}

// Set — перезаписать значение (без TTL).
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Close — закрыть клиент.
func (s *KVStore) Close() error {
	return s.client.Close()
}
