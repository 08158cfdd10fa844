package slotmanager

import (
	"sort"
	"time"

	"github.com/m04kA/NC-SessionService/internal/domain"
	"github.com/m04kA/NC-SessionService/pkg/types"
)

// generateWindowSlots генерирует все слоты одного окна расписания
// с фиксированным шагом SlotDurationMinutes
// Слот, конец которого выходит за время закрытия, не включается
func generateWindowSlots(w *domain.ScheduleWindow) ([]types.TimeString, error) {
	if !w.IsValid() {
		return []types.TimeString{}, nil
	}

	windowMinutes, err := w.OpenTime.MinutesUntil(w.CloseTime)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0, windowMinutes/w.SlotDurationMinutes)
	current := w.OpenTime

	for current.IsBefore(w.CloseTime) {
		slotEnd, err := current.AddMinutes(w.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(w.CloseTime) {
			break
		}

		slots = append(slots, current)
		current, err = current.AddMinutes(w.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// filterPastSlots отбрасывает слоты, которые уже нельзя занять:
// для сегодняшней даты - слоты, начинающиеся не позже текущего времени
// Для будущих дат возвращает вход без изменений
func filterPastSlots(slots []types.TimeString, date time.Time, now time.Time) []types.TimeString {
	if !isSameDay(date, now) {
		return slots
	}

	cutoff := types.NewTimeString(now)
	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.IsAfter(cutoff) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

// countOverlappingSessions подсчитывает количество активных сессий,
// пересекающихся с указанным слотом
// Граничные случаи (сессия заканчивается ровно в начале слота или
// наоборот) пересечением НЕ считаются - используются строгие неравенства
func countOverlappingSessions(slotStart types.TimeString, slotDuration int, sessions []*domain.Session) int {
	slotEnd, err := slotStart.AddMinutes(slotDuration)
	if err != nil {
		return 0
	}

	count := 0

	for _, s := range sessions {
		// Пропускаем неактивные сессии - они не занимают слот
		if !s.IsActive() {
			continue
		}

		sessionStart := s.StartTime
		sessionEnd, err := s.StartTime.AddMinutes(s.DurationMinutes)
		if err != nil {
			continue
		}

		if sessionStart.IsBefore(slotEnd) && sessionEnd.IsAfter(slotStart) {
			count++
		}
	}

	return count
}

// mergeSlotLabels объединяет слоты нескольких окон одного дня
// в отсортированный список без дубликатов
func mergeSlotLabels(groups ...[]types.TimeString) []types.TimeString {
	seen := make(map[types.TimeString]struct{})
	merged := make([]types.TimeString, 0)

	for _, group := range groups {
		for _, slot := range group {
			if _, ok := seen[slot]; ok {
				continue
			}
			seen[slot] = struct{}{}
			merged = append(merged, slot)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].IsBefore(merged[j])
	})

	return merged
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
