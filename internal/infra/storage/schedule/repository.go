package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m04kA/NC-SessionService/internal/domain"
	"github.com/m04kA/NC-SessionService/pkg/dbmetrics"
	"github.com/m04kA/NC-SessionService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с окнами расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var windowColumns = []string{
	"id",
	"category",
	"weekday",
	"open_time",
	"close_time",
	"slot_duration_minutes",
	"capacity",
	"created_at",
	"updated_at",
}

// GetAll получает все окна расписания
// Используется slot manager'ом при прогреве кэша на старте
func (r *Repository) GetAll(ctx context.Context) ([]*domain.ScheduleWindow, error) {
	selectBuilder := psqlbuilder.Select(windowColumns...).
		From("schedule_windows").
		OrderBy("category ASC, weekday ASC, open_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryWindows(ctx, query, args)
}

func (r *Repository) queryWindows(ctx context.Context, query string, args []interface{}) ([]*domain.ScheduleWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: queryWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.ScheduleWindow, 0)
	for rows.Next() {
		var w domain.ScheduleWindow
		var weekday int
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&w.ID,
			&w.Category,
			&weekday,
			&w.OpenTime,
			&w.CloseTime,
			&w.SlotDurationMinutes,
			&w.Capacity,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: queryWindows - scan row: %v", ErrScanRow, err)
		}

		w.Weekday = time.Weekday(weekday)
		w.CreatedAt = createdAt.Time
		w.UpdatedAt = updatedAt.Time

		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: queryWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
