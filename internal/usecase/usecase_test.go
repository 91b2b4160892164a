package usecase_test

import (
	"context"
	"sync"

	"github.com/Gunvolt24/storefront/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

const cartKey = "cart"

var (
	phone  = domain.Product{ID: 1, Title: "iPhone 9", Price: 549, Category: "smartphones"}
	laptop = domain.Product{ID: 2, Title: "MacBook Pro", Price: 1749.5, Category: "laptops"}
	oil    = domain.Product{ID: 3, Title: "Tree Oil 30ml", Price: 12, Category: "skincare"}
)

// mapStorage — простое KV-хранилище для сценарных тестов.
type mapStorage struct {
	data map[string]string
	sets int
}

func newMapStorage() *mapStorage { return &mapStorage{data: map[string]string{}} }

func (m *mapStorage) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapStorage) Set(_ context.Context, key, value string) error {
	m.sets++
	m.data[key] = value
	return nil
}

// lockedStorage — потокобезопасный вариант для конкурентных тестов.
type lockedStorage struct {
	mu   sync.Mutex
	data map[string]string
}

func newLockedStorage() *lockedStorage { return &lockedStorage{data: map[string]string{}} }

func (l *lockedStorage) Get(_ context.Context, key string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.data[key]
	return v, ok, nil
}

func (l *lockedStorage) Set(_ context.Context, key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.data[key] = value
	return nil
}
