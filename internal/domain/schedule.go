package domain

import (
	"time"

	"github.com/m04kA/NC-SessionService/pkg/types"
)

// ScheduleWindow represents a recurring weekly availability window
// for a booking category. Slots are generated inside the window with
// a fixed step of SlotDurationMinutes.
type ScheduleWindow struct {
	ID                  int64
	Category            string
	Weekday             time.Weekday
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	Capacity            int // Сколько сессий может идти параллельно в одном слоте
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsValid returns true if the window describes a non-empty time range
func (w *ScheduleWindow) IsValid() bool {
	return !w.OpenTime.IsZero() &&
		!w.CloseTime.IsZero() &&
		w.OpenTime.IsBefore(w.CloseTime) &&
		w.SlotDurationMinutes > 0 &&
		w.Capacity > 0
}

// SupportsParallelSessions returns true if more than one session may
// occupy the same slot
func (w *ScheduleWindow) SupportsParallelSessions() bool {
	return w.Capacity > 1
}
