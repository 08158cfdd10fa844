package slotmanager

import (
	"context"
	"time"

	"github.com/m04kA/NC-SessionService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByFilter(ctx context.Context, filter domain.SessionsFilter) ([]*domain.Session, error)
}

// ScheduleRepository интерфейс репозитория окон расписания
type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]*domain.ScheduleWindow, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
