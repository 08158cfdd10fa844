package create_session

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/NC-SessionService/internal/domain"
	"github.com/m04kA/NC-SessionService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// До прохождения валидации usecase не выполняет ни одного вызова
// к хранилищу или внешним сервисам
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}

	// Длительность - пресет {15,30,45,60} или произвольное положительное
	// значение в допустимых пределах
	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата сессии не в прошлом
func validateDate(sessionDate time.Time, now time.Time) error {
	if isDateInPast(sessionDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// combineDateTime собирает дату и время слота в момент времени
func combineDateTime(date time.Time, startTime types.TimeString) (time.Time, error) {
	parsed, err := startTime.ToTime()
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		time.Local,
	), nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
