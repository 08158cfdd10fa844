package create_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/NC-SessionService/internal/domain"
	sessionRepo "github.com/m04kA/NC-SessionService/internal/infra/storage/session"
	userRepo "github.com/m04kA/NC-SessionService/internal/infra/storage/user"
)

// UseCase use case для создания сессии
type UseCase struct {
	sessionRepo  SessionRepository
	userRepo     UserRepository
	slotManager  SlotManager
	meetClient   MeetServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	userRepo UserRepository,
	slotManager SlotManager,
	meetClient MeetServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		userRepo:     userRepo,
		slotManager:  slotManager,
		meetClient:   meetClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания сессии
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// два конкурирующих запроса на один слот не могут создать две записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSession: user=%d, date=%s, time=%s, duration=%d",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	// До этой проверки ни одного обращения к хранилищу или внешним сервисам
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты: сессии в прошлом создавать нельзя
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateSession: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем пользователя (email нужен для создания видеовстречи)
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateSession: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateSession: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Session

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Ждем готовности менеджера слотов (кэш рабочих окон)
		if err := uc.slotManager.WaitReady(txCtx); err != nil {
			uc.logger.Error("CreateSession: slot manager is not ready: %v", err)
			return fmt.Errorf("%w: slot manager is not ready: %v", ErrInternal, err)
		}

		// 5.2. Проверяем доступность слота (чтение занятости с FOR UPDATE)
		free, err := uc.slotManager.IsSlotFree(txCtx, req.Date, req.StartTime, req.Category)
		if err != nil {
			uc.logger.Error("CreateSession: failed to check slot availability: %v", err)
			return fmt.Errorf("%w: failed to check slot availability: %v", ErrInternal, err)
		}

		if !free {
			uc.logger.Warn("CreateSession: slot %s %s is not available",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotNotAvailable
		}

		// 5.3. Создаем сессию
		session := &domain.Session{
			UserID:          req.UserID,
			Title:           req.Title,
			DurationMinutes: req.DurationMinutes,
			Date:            req.Date,
			StartTime:       req.StartTime,
			Category:        req.Category,
			Status:          domain.StatusScheduled,
		}

		created, err := uc.sessionRepo.Create(txCtx, session)
		if err != nil {
			// Уникальный индекс - последняя линия защиты от двойного бронирования
			if errors.Is(err, sessionRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateSession: slot %s %s taken by concurrent request",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateSession: failed to create session: %v", err)
			return fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateSession: successfully created session id=%d", result.ID)

	// 6. Создаем видеовстречу. Сессия уже сохранена: ошибка на этом шаге
	// не откатывает запись, клиент получает ответ без ссылки
	meetLink, linkGenerated := uc.createMeetLink(ctx, result, user.Email)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		Title:           result.Title,
		DurationMinutes: result.DurationMinutes,
		Date:            result.Date,
		StartTime:       result.StartTime,
		Category:        result.Category,
		Status:          string(result.Status),
		MeetLink:        meetLink,
		LinkGenerated:   linkGenerated,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// createMeetLink создает видеовстречу и привязывает ссылку к сессии
// Возвращает (nil, false), если встречу создать или привязать не удалось
func (uc *UseCase) createMeetLink(ctx context.Context, session *domain.Session, email string) (*string, bool) {
	start, err := combineDateTime(session.Date, session.StartTime)
	if err != nil {
		uc.logger.Error("CreateSession: failed to build meeting start time for session id=%d: %v", session.ID, err)
		return nil, false
	}
	end := start.Add(time.Duration(session.DurationMinutes) * time.Minute)

	link, err := uc.meetClient.CreateMeeting(ctx, email, start, end)
	if err != nil {
		uc.logger.Error("CreateSession: failed to create meeting for session id=%d: %v", session.ID, err)
		return nil, false
	}

	if err := uc.sessionRepo.SetMeetLink(ctx, session.ID, link); err != nil {
		uc.logger.Error("CreateSession: failed to attach meet link to session id=%d: %v", session.ID, err)
		return nil, false
	}

	uc.logger.Info("CreateSession: meet link attached to session id=%d", session.ID)
	return &link, true
}
