package list_users

import (
	"context"

	"github.com/m04kA/NC-SessionService/internal/domain"
)

type UserService interface {
	ListAll(ctx context.Context) ([]*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
