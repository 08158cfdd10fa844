package migrations

import "embed"

// FS встроенные SQL миграции схемы БД
//
//go:embed *.sql
var FS embed.FS
