package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/NC-SessionService/internal/domain"
	userRepo "github.com/m04kA/NC-SessionService/internal/infra/storage/user"
)

// Service сервис справочника пользователей
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListAll возвращает всех пользователей справочника в порядке выборки
func (s *Service) ListAll(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d users", len(users))
	return users, nil
}

// GetByID возвращает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return user, nil
}
