package ports

import "context"

// KVStorage — хранилище строк по ключу (аналог localStorage).
// Требования к реализации: потокобезопасность; Set перезаписывает значение целиком.
type KVStorage interface {
	// Get — вернуть значение; found=false, если ключа нет.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set — сохранить/перезаписать значение.
	Set(ctx context.Context, key, value string) error
}
