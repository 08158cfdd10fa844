package domain

// CategorySession категория видео-консультаций
// Единственная категория на текущий момент; расписание и слоты
// партиционируются по ней
const CategorySession = "session"

// Default configuration values
const (
	DefaultDurationMinutes = 30
	DefaultHorizonDays     = 30 // На сколько дней вперед отдаются доступные даты
)

// Business validation constants
const (
	MinDurationMinutes          = 5
	MaxDurationMinutes          = 240 // 4 часа
	MaxTitleLength              = 200
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот
// Используется при подсчете занятости слотов
var InactiveStatuses = []SessionStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []SessionStatus{
	StatusScheduled,
	StatusCompleted,
}
