package sessions

import (
	"context"

	"github.com/m04kA/NC-SessionService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.SessionStatus) ([]*domain.Session, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
