package ports

import "context"

// Logger — минимальный контракт логгера для внешних слоёв.
// Контекст несёт метаданные запроса (request_id, trace_id), их добавляет реализация.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...any) // Debugf — отладочные сообщения.
	Infof(ctx context.Context, format string, args ...any)  // Infof — информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf — предупреждения.
	Errorf(ctx context.Context, format string, args ...any) // Errorf — ошибки.
}
