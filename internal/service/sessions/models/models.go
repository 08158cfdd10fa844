package models

import (
	"errors"
	"time"

	"github.com/m04kA/NC-SessionService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid session status")
)

// Request модели

// CancelSessionRequest запрос на отмену сессии
type CancelSessionRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// GetUserSessionsRequest запрос на получение сессий пользователя
type GetUserSessionsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// SessionResponse ответ с данными сессии
type SessionResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Date            string `json:"date"`      // "2025-01-10"
	StartTime       string `json:"startTime"` // "09:00"
	Category        string `json:"category"`
	Status          string `json:"status"`

	MeetLink *string `json:"meetLink,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionListResponse ответ со списком сессий
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// Методы конвертации

// FromDomainSession конвертирует domain модель в DTO
func FromDomainSession(s *domain.Session) *SessionResponse {
	if s == nil {
		return nil
	}

	resp := &SessionResponse{
		ID:                 s.ID,
		UserID:             s.UserID,
		Title:              s.Title,
		DurationMinutes:    s.DurationMinutes,
		Date:               s.Date.Format(domain.DateFormat),
		StartTime:          s.StartTime.String(),
		Category:           s.Category,
		Status:             string(s.Status),
		CancellationReason: s.CancellationReason,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}

	// Пустая ссылка в хранилище не отдается клиенту
	if s.HasMeetLink() {
		resp.MeetLink = s.MeetLink
	}

	if s.CancelledAt != nil {
		cancelledStr := s.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainSessionList конвертирует список domain моделей в DTO
func FromDomainSessionList(sessions []*domain.Session) *SessionListResponse {
	if sessions == nil {
		return &SessionListResponse{
			Sessions: []SessionResponse{},
		}
	}

	resp := &SessionListResponse{
		Sessions: make([]SessionResponse, len(sessions)),
	}

	for i, s := range sessions {
		if sessionResp := FromDomainSession(s); sessionResp != nil {
			resp.Sessions[i] = *sessionResp
		}
	}

	return resp
}

// ToDomainSessionStatus конвертирует строку в domain.SessionStatus с валидацией
func ToDomainSessionStatus(status string) (domain.SessionStatus, error) {
	s := domain.SessionStatus(status)

	validStatuses := []domain.SessionStatus{
		domain.StatusScheduled,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
