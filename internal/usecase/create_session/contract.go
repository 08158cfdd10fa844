package create_session

import (
	"context"
	"time"

	"github.com/m04kA/NC-SessionService/internal/domain"
	"github.com/m04kA/NC-SessionService/pkg/types"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	SetMeetLink(ctx context.Context, id int64, meetLink string) error
}

// UserRepository интерфейс справочника пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// SlotManager интерфейс менеджера слотов
// IsSlotFree - предфинальная проверка свободности слота; гарантий
// против гонки не дает, финальная защита - уникальный индекс хранилища
type SlotManager interface {
	WaitReady(ctx context.Context) error
	IsSlotFree(ctx context.Context, date time.Time, startTime types.TimeString, category string) (bool, error)
}

// MeetServiceClient интерфейс клиента сервиса видеовстреч
type MeetServiceClient interface {
	CreateMeeting(ctx context.Context, patientEmail string, start, end time.Time) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
