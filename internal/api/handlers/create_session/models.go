package create_session

import (
	"time"

	"github.com/m04kA/NC-SessionService/internal/domain"
	createSession "github.com/m04kA/NC-SessionService/internal/usecase/create_session"
	"github.com/m04kA/NC-SessionService/pkg/types"
)

// CreateSessionRequest HTTP request model
type CreateSessionRequest struct {
	UserID          int64  `json:"userId"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Date            string `json:"date"`      // "2026-09-15"
	StartTime       string `json:"startTime"` // "10:00"
	Category        string `json:"category,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	Title           string  `json:"title"`
	DurationMinutes int     `json:"durationMinutes"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	Category        string  `json:"category"`
	Status          string  `json:"status"`
	MeetLink        *string `json:"meetLink,omitempty"`
	LinkGenerated   bool    `json:"linkGenerated"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSessionRequest) ToUseCaseRequest() (*createSession.Request, error) {
	// Парсим дату
	sessionDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	// Категория по умолчанию - обычная сессия
	category := r.Category
	if category == "" {
		category = domain.CategorySession
	}

	// Длительность по умолчанию
	duration := r.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	return &createSession.Request{
		UserID:          r.UserID,
		Title:           r.Title,
		DurationMinutes: duration,
		Date:            sessionDate,
		StartTime:       startTime,
		Category:        category,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		Title:           resp.Title,
		DurationMinutes: resp.DurationMinutes,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		Category:        resp.Category,
		Status:          resp.Status,
		MeetLink:        resp.MeetLink,
		LinkGenerated:   resp.LinkGenerated,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
