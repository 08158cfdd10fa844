package slotmanager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/NC-SessionService/internal/domain"
	"github.com/m04kA/NC-SessionService/pkg/types"
)

func window(open, close types.TimeString, slotMinutes, capacity int) *domain.ScheduleWindow {
	return &domain.ScheduleWindow{
		ID:                  1,
		Category:            domain.CategorySession,
		Weekday:             time.Monday,
		OpenTime:            open,
		CloseTime:           close,
		SlotDurationMinutes: slotMinutes,
		Capacity:            capacity,
	}
}

func TestGenerateWindowSlots(t *testing.T) {
	t.Run("regular window", func(t *testing.T) {
		slots, err := generateWindowSlots(window("09:00", "11:00", 30, 1))
		assert.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)
	})

	t.Run("last slot must fit before close", func(t *testing.T) {
		// 10:20+30 выходит за 10:30 - слот не включается
		slots, err := generateWindowSlots(window("09:00", "10:30", 40, 1))
		assert.NoError(t, err)
		assert.Equal(t, []types.TimeString{"09:00", "09:40"}, slots)
	})

	t.Run("invalid window yields no slots", func(t *testing.T) {
		slots, err := generateWindowSlots(window("18:00", "09:00", 30, 1))
		assert.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestFilterPastSlots(t *testing.T) {
	slots := []types.TimeString{"09:00", "12:00", "15:00"}
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	t.Run("future date untouched", func(t *testing.T) {
		now := time.Date(2026, 9, 13, 23, 0, 0, 0, time.UTC)
		assert.Equal(t, slots, filterPastSlots(slots, date, now))
	})

	t.Run("today drops started slots", func(t *testing.T) {
		now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
		// Слот ровно в текущее время тоже отбрасывается
		assert.Equal(t, []types.TimeString{"15:00"}, filterPastSlots(slots, date, now))
	})
}

func TestCountOverlappingSessions(t *testing.T) {
	session := func(start types.TimeString, minutes int, status domain.SessionStatus) *domain.Session {
		return &domain.Session{StartTime: start, DurationMinutes: minutes, Status: status}
	}

	t.Run("strict inequality at boundaries", func(t *testing.T) {
		sessions := []*domain.Session{
			// Заканчивается ровно в начале слота - не пересечение
			session("09:00", 60, domain.StatusScheduled),
			// Начинается ровно в конце слота - не пересечение
			session("10:30", 30, domain.StatusScheduled),
		}
		assert.Equal(t, 0, countOverlappingSessions("10:00", 30, sessions))
	})

	t.Run("partial overlap counts", func(t *testing.T) {
		sessions := []*domain.Session{
			session("09:45", 30, domain.StatusScheduled),
			session("10:15", 30, domain.StatusScheduled),
		}
		assert.Equal(t, 2, countOverlappingSessions("10:00", 30, sessions))
	})

	t.Run("inactive sessions do not occupy slots", func(t *testing.T) {
		sessions := []*domain.Session{
			session("10:00", 30, domain.StatusCancelled),
			session("10:00", 30, domain.StatusNoShow),
		}
		assert.Equal(t, 0, countOverlappingSessions("10:00", 30, sessions))
	})

	t.Run("long session covers several slots", func(t *testing.T) {
		sessions := []*domain.Session{session("09:00", 180, domain.StatusScheduled)}
		assert.Equal(t, 1, countOverlappingSessions("10:00", 30, sessions))
		assert.Equal(t, 1, countOverlappingSessions("11:30", 30, sessions))
	})
}

func TestMergeSlotLabels(t *testing.T) {
	merged := mergeSlotLabels(
		[]types.TimeString{"10:00", "09:00"},
		[]types.TimeString{"09:30", "10:00"},
	)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, merged)
}
