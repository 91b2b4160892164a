// Пакет migrations — SQL-миграции goose для PostgreSQL, встроенные в бинарник.
package migrations

import "embed"

// FS — файлы миграций (корень = ".").
//
//go:embed *.sql
var FS embed.FS
