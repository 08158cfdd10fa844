package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/NC-SessionService/internal/domain"
	"github.com/m04kA/NC-SessionService/pkg/dbmetrics"
	"github.com/m04kA/NC-SessionService/pkg/psqlbuilder"
)

// Repository репозиторий справочника пользователей
// Читает представление user_dashboard; запись в справочник
// не входит в зону ответственности этого сервиса
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll получает всех пользователей справочника в порядке выборки
func (r *Repository) ListAll(ctx context.Context) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"user_id",
		"email",
		"first_name",
		"last_name",
	).
		From("user_dashboard").
		OrderBy("user_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"user_id",
		"email",
		"first_name",
		"last_name",
	).
		From("user_dashboard").
		Where(squirrel.Eq{"user_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %v", ErrScanRow, err)
	}

	return &u, nil
}
