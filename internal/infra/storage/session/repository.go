package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/NC-SessionService/internal/domain"
	"github.com/m04kA/NC-SessionService/pkg/dbmetrics"
	"github.com/m04kA/NC-SessionService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

var sessionColumns = []string{
	"id",
	"user_id",
	"title",
	"duration_minutes",
	"session_date",
	"start_time",
	"category",
	"status",
	"meet_link",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую сессию
// Если в контексте передана активная транзакция, использует её.
//
// Таблица sessions несет частичный уникальный индекс на
// (session_date, start_time, category) по активным статусам, поэтому
// проигрыш гонки "проверили-вставили" приходит сюда как нарушение
// уникальности и мапится в ErrSlotTaken
func (r *Repository) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns(
			"user_id",
			"title",
			"duration_minutes",
			"session_date",
			"start_time",
			"category",
			"status",
		).
		Values(
			s.UserID,
			s.Title,
			s.DurationMinutes,
			s.Date,
			s.StartTime,
			s.Category,
			s.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %v", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает сессию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := r.scanSession(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByUserID получает историю сессий пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.SessionStatus) ([]*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("sessions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("session_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSessions(rows)
}

// GetByFilter получает сессии с гибкой фильтрацией
// По умолчанию неактивные сессии (отмененные, no-show) исключаются:
// они не занимают слот и не должны влиять на подсчет занятости
func (r *Repository) GetByFilter(ctx context.Context, filter domain.SessionsFilter) ([]*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("sessions")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"session_date": *filter.Date})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	if filter.Date != nil {
		// Для конкретной даты сортируем по времени начала
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("session_date DESC, start_time DESC")
	}

	// Внутри транзакции на конкретную дату блокируем строки (FOR UPDATE) -
	// это путь usecase создания сессии
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSessions(rows)
}

// SetMeetLink прикрепляет ссылку на видеовстречу к сессии
// Вызывается не более одного раза после успешного создания встречи
func (r *Repository) SetMeetLink(ctx context.Context, id int64, meetLink string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sessions").
		Set("meet_link", meetLink).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetMeetLink - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetMeetLink - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetMeetLink - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// UpdateStatus обновляет статус сессии
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sessions").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Cancel отменяет сессию с указанием причины
// Отмененная сессия освобождает слот
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sessions").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSession сканирует одну строку в домен
func (r *Repository) scanSession(row rowScanner) (*domain.Session, error) {
	var s domain.Session
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Title,
		&s.DurationMinutes,
		&s.Date,
		&s.StartTime,
		&s.Category,
		&s.Status,
		&s.MeetLink,
		&s.CancellationReason,
		&s.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// scanSessions сканирует результаты запроса в слайс сессий
func (r *Repository) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	sessions := make([]*domain.Session, 0)

	for rows.Next() {
		s, err := r.scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSessions - scan row: %v", ErrScanRow, err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSessions - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}
