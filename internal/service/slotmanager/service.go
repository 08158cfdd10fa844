package slotmanager

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/NC-SessionService/internal/domain"
	"github.com/m04kA/NC-SessionService/pkg/types"
)

// Service менеджер слотов: единственный источник правды о доступности
// временных слотов для бронирования.
//
// Окна расписания загружаются один раз на старте (Start); все запросы
// доступности сериализуются после готовности через WaitReady. Занятость
// слотов при этом НЕ кэшируется - каждый запрос читает активные сессии
// из хранилища заново.
//
// Гарантий от гонки "проверили-забронировали" менеджер не дает:
// финальная защита - уникальный индекс на уровне хранилища
type Service struct {
	sessionRepo  SessionRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger

	// windows кэш окон расписания: категория -> день недели -> окна
	windows map[string]map[time.Weekday][]*domain.ScheduleWindow

	ready     chan struct{}
	startOnce sync.Once
}

// NewService создает новый экземпляр менеджера слотов
// До вызова Start запросы доступности блокируются на WaitReady
func NewService(
	sessionRepo SessionRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		ready:        make(chan struct{}),
	}
}

// Start загружает окна расписания и открывает менеджер для запросов
// Повторные вызовы игнорируются
func (s *Service) Start(ctx context.Context) error {
	var startErr error

	s.startOnce.Do(func() {
		windows, err := s.scheduleRepo.GetAll(ctx)
		if err != nil {
			startErr = fmt.Errorf("%w: failed to load schedule windows: %v", ErrInternal, err)
			return
		}

		s.windows = make(map[string]map[time.Weekday][]*domain.ScheduleWindow)
		for _, w := range windows {
			if !w.IsValid() {
				s.logger.Warn("SlotManager: skipping invalid schedule window id=%d", w.ID)
				continue
			}
			// Хранилище допускает только одну активную сессию на слот,
			// поэтому capacity > 1 фактически не будет работать
			if w.SupportsParallelSessions() {
				s.logger.Warn("SlotManager: window id=%d declares capacity=%d, storage allows one active session per slot",
					w.ID, w.Capacity)
			}
			byWeekday, ok := s.windows[w.Category]
			if !ok {
				byWeekday = make(map[time.Weekday][]*domain.ScheduleWindow)
				s.windows[w.Category] = byWeekday
			}
			byWeekday[w.Weekday] = append(byWeekday[w.Weekday], w)
		}

		s.logger.Info("SlotManager: initialized with %d schedule windows, %d categories",
			len(windows), len(s.windows))
		close(s.ready)
	})

	return startErr
}

// WaitReady блокируется до завершения инициализации менеджера
// Возвращает ErrNotReady, если контекст истек раньше
func (s *Service) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrNotReady, ctx.Err())
	}
}

// AvailableDates возвращает даты с хотя бы одним свободным слотом
// для категории в пределах горизонта бронирования
// Даты отсортированы по возрастанию, без дубликатов
func (s *Service) AvailableDates(ctx context.Context, category string) ([]time.Time, error) {
	if err := s.WaitReady(ctx); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	today := truncateToDay(now)

	dates := make([]time.Time, 0)
	for offset := 0; offset < domain.DefaultHorizonDays; offset++ {
		date := today.AddDate(0, 0, offset)

		slots, err := s.openSlots(ctx, date, category, now)
		if err != nil {
			return nil, err
		}
		if len(slots) > 0 {
			dates = append(dates, date)
		}
	}

	s.logger.Info("SlotManager: %d available dates for category=%s", len(dates), category)
	return dates, nil
}

// SlotsForDate возвращает свободные слоты на дату для категории
// Пустой список - валидный результат ("все занято"), не ошибка
func (s *Service) SlotsForDate(ctx context.Context, date time.Time, category string) ([]types.TimeString, error) {
	if err := s.WaitReady(ctx); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	slots, err := s.openSlots(ctx, date, category, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SlotManager: %d open slots on %s for category=%s",
		len(slots), date.Format(domain.DateFormat), category)
	return slots, nil
}

// IsSlotFree проверяет, что слот полностью свободен
// Занятость вычисляется заново при каждом вызове - это последняя
// проверка перед фиксацией бронирования
func (s *Service) IsSlotFree(ctx context.Context, date time.Time, startTime types.TimeString, category string) (bool, error) {
	if err := s.WaitReady(ctx); err != nil {
		return false, err
	}
	if category == "" || date.IsZero() || startTime.IsZero() {
		return false, fmt.Errorf("%w: date, time and category are required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	slots, err := s.openSlots(ctx, date, category, now)
	if err != nil {
		return false, err
	}

	for _, slot := range slots {
		if slot == startTime {
			return true, nil
		}
	}
	return false, nil
}

// openSlots вычисляет свободные слоты на дату: генерирует слоты окон
// расписания этого дня недели и отбрасывает занятые и прошедшие
func (s *Service) openSlots(ctx context.Context, date time.Time, category string, now time.Time) ([]types.TimeString, error) {
	if isDateInPast(date, now) {
		return []types.TimeString{}, nil
	}

	byWeekday, ok := s.windows[category]
	if !ok {
		return []types.TimeString{}, nil
	}

	dayWindows := byWeekday[date.Weekday()]
	if len(dayWindows) == 0 {
		return []types.TimeString{}, nil
	}

	// Занятость читается из хранилища на каждый запрос
	dateOnly := truncateToDay(date)
	sessions, err := s.sessionRepo.GetByFilter(ctx, domain.SessionsFilter{
		Date:            &dateOnly,
		Category:        &category,
		IncludeInactive: false,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get sessions: %v", ErrInternal, err)
	}

	groups := make([][]types.TimeString, 0, len(dayWindows))
	for _, w := range dayWindows {
		labels, err := generateWindowSlots(w)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		open := make([]types.TimeString, 0, len(labels))
		for _, label := range labels {
			occupied := countOverlappingSessions(label, w.SlotDurationMinutes, sessions)
			if occupied < w.Capacity {
				open = append(open, label)
			}
		}
		groups = append(groups, open)
	}

	merged := mergeSlotLabels(groups...)
	return filterPastSlots(merged, date, now), nil
}
