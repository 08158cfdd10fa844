package users

import (
	"context"

	"github.com/m04kA/NC-SessionService/internal/domain"
)

// UserRepository интерфейс репозитория справочника пользователей
type UserRepository interface {
	ListAll(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
