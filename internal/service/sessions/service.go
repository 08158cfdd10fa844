package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NC-SessionService/internal/domain"
	sessionRepo "github.com/m04kA/NC-SessionService/internal/infra/storage/session"
	"github.com/m04kA/NC-SessionService/internal/service/sessions/models"
	"github.com/m04kA/NC-SessionService/pkg/ptr"
)

// Service сервис для работы с сессиями
type Service struct {
	sessionRepo SessionRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// GetByID получает сессию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SessionResponse, error) {
	s.logger.Info("GetByID: fetching session id=%d", id)

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetByID: session id=%d not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByID: repository error for session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSession(session), nil
}

// GetUserSessions получает историю сессий пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserSessions(ctx context.Context, req *models.GetUserSessionsRequest) (*models.SessionListResponse, error) {
	s.logger.Info("GetUserSessions: fetching sessions for user=%d, status=%q", req.UserID, ptr.Deref(req.Status))

	var domainStatus *domain.SessionStatus
	if req.Status != nil {
		status, err := models.ToDomainSessionStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserSessions: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	sessions, err := s.sessionRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserSessions: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserSessions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserSessions: fetched %d sessions for user=%d", len(sessions), req.UserID)
	return models.FromDomainSessionList(sessions), nil
}

// UpdateStatus переводит сессию в новый статус (завершена, неявка)
// Отмена идет отдельным путем через Cancel - с причиной и меткой времени
func (s *Service) UpdateStatus(ctx context.Context, sessionID int64, status string) error {
	s.logger.Info("UpdateStatus: session id=%d -> status=%s", sessionID, status)

	domainStatus, err := models.ToDomainSessionStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for session id=%d", status, sessionID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	if domainStatus == domain.StatusCancelled {
		return fmt.Errorf("%w: use cancel endpoint to cancel a session", ErrInvalidInput)
	}

	if err := s.sessionRepo.UpdateStatus(ctx, sessionID, domainStatus); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("UpdateStatus: session id=%d not found", sessionID)
			return ErrSessionNotFound
		}
		s.logger.Error("UpdateStatus: failed for session id=%d: %v", sessionID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: session id=%d moved to %s", sessionID, domainStatus)
	return nil
}

// Cancel отменяет сессию
// Отменить можно только запланированную сессию; отмена освобождает слот
func (s *Service) Cancel(ctx context.Context, sessionID int64, req *models.CancelSessionRequest) error {
	s.logger.Info("Cancel: cancelling session id=%d", sessionID)

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Cancel: session id=%d not found", sessionID)
			return ErrSessionNotFound
		}
		s.logger.Error("Cancel: repository error for session id=%d: %v", sessionID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !session.CanBeCancelled() {
		s.logger.Warn("Cancel: session id=%d cannot be cancelled, status=%s", sessionID, session.Status)
		return ErrCannotCancel
	}

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	if err := s.sessionRepo.Cancel(ctx, sessionID, req.CancellationReason); err != nil {
		s.logger.Error("Cancel: failed to cancel session id=%d: %v", sessionID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: session id=%d cancelled", sessionID)
	return nil
}
