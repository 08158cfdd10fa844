package domain

import (
	"time"

	"github.com/m04kA/NC-SessionService/pkg/types"
)

// SessionStatus represents the status of a consultation session
type SessionStatus string

const (
	StatusScheduled SessionStatus = "scheduled"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
	StatusNoShow    SessionStatus = "no_show"
)

// Session represents a scheduled video-consultation session
type Session struct {
	ID              int64
	UserID          int64
	Title           string
	DurationMinutes int
	Date            time.Time // Дата сессии (без времени)
	StartTime       types.TimeString
	Category        string
	Status          SessionStatus

	// Ссылка на видеовстречу; заполняется после успешного запроса
	// к meeting-сервису, до этого nil
	MeetLink *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the session still occupies its slot
func (s *Session) IsActive() bool {
	for _, status := range ActiveStatuses {
		if s.Status == status {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the session can be cancelled
func (s *Session) CanBeCancelled() bool {
	return s.Status == StatusScheduled
}

// HasMeetLink returns true if a meeting link has been attached
func (s *Session) HasMeetLink() bool {
	return s.MeetLink != nil && *s.MeetLink != ""
}

// SessionsFilter фильтр для выборки сессий
type SessionsFilter struct {
	UserID          *int64         // Фильтр по пользователю (опционально)
	Date            *time.Time     // Фильтр по дате (опционально)
	Category        *string        // Фильтр по категории (опционально)
	Status          *SessionStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные сессии и no-show
}
