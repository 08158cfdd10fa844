package create_session

import (
	"time"

	"github.com/m04kA/NC-SessionService/pkg/types"
)

// Request модель запроса на создание сессии
type Request struct {
	UserID          int64            // ID пациента
	Title           string           // Название сессии (обязательно, непустое)
	DurationMinutes int              // Длительность в минутах (пресет или произвольная)
	Date            time.Time        // Дата сессии (без времени)
	StartTime       types.TimeString // Время начала слота (например, "09:00")
	Category        string           // Категория бронирования (обычно "session")
}

// Response модель ответа с созданной сессией
type Response struct {
	ID              int64            // ID созданной сессии
	UserID          int64            // ID пациента
	Title           string           // Название сессии
	DurationMinutes int              // Длительность в минутах
	Date            time.Time        // Дата сессии
	StartTime       types.TimeString // Время начала
	Category        string           // Категория
	Status          string           // Статус сессии

	// Результат шага генерации ссылки на видеовстречу.
	// LinkGenerated=false при созданной сессии - частичный успех:
	// сессия запланирована, ссылку сгенерировать не удалось
	MeetLink      *string
	LinkGenerated bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
