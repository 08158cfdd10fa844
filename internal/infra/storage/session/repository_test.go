package session

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NC-SessionService/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	insertQuery := regexp.QuoteMeta(
		"INSERT INTO sessions (user_id,title,duration_minutes,session_date,start_time,category,status) " +
			"VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at, updated_at")

	session := &domain.Session{
		UserID:          7,
		Title:           "Первичная консультация",
		DurationMinutes: 30,
		Date:            time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		Category:        domain.CategorySession,
		Status:          domain.StatusScheduled,
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newMock(t)

		now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(insertQuery).
			WithArgs(int64(7), "Первичная консультация", 30, session.Date, session.StartTime, domain.CategorySession, domain.StatusScheduled).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(42), now, now))

		created, err := repo.Create(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, now, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrSlotTaken", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(insertQuery).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(context.Background(), session)
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other pq error is ErrExecQuery", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(insertQuery).
			WillReturnError(&pq.Error{Code: "53300"})

		_, err := repo.Create(context.Background(), session)
		assert.ErrorIs(t, err, ErrExecQuery)
	})
}

func TestRepository_GetByID(t *testing.T) {
	selectQuery := regexp.QuoteMeta(
		"SELECT id, user_id, title, duration_minutes, session_date, start_time, category, status, " +
			"meet_link, cancellation_reason, cancelled_at, created_at, updated_at FROM sessions WHERE id = $1")

	t.Run("found", func(t *testing.T) {
		repo, mock := newMock(t)

		now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(selectQuery).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(sessionColumns).
				AddRow(int64(42), int64(7), "Консультация", 30,
					time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), "10:00:00",
					"session", "scheduled", nil, nil, nil, now, now))

		s, err := repo.GetByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), s.ID)
		// Секунды Postgres TIME обрезаются при сканировании
		assert.Equal(t, "10:00", s.StartTime.String())
		assert.Nil(t, s.MeetLink)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(selectQuery).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(sessionColumns))

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestRepository_GetByFilter(t *testing.T) {
	t.Run("active only by date and category", func(t *testing.T) {
		repo, mock := newMock(t)

		date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
		category := domain.CategorySession

		// Неактивные статусы исключаются, сортировка по времени начала
		mock.ExpectQuery(`SELECT .+ FROM sessions WHERE session_date = \$1 AND category = \$2 AND status NOT IN \(\$3,\$4\) ORDER BY start_time ASC`).
			WithArgs(date, category, "cancelled", "no_show").
			WillReturnRows(sqlmock.NewRows(sessionColumns))

		sessions, err := repo.GetByFilter(context.Background(), domain.SessionsFilter{
			Date:     &date,
			Category: &category,
		})
		require.NoError(t, err)
		assert.Empty(t, sessions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SetMeetLink(t *testing.T) {
	updateQuery := regexp.QuoteMeta(
		"UPDATE sessions SET meet_link = $1, updated_at = NOW() WHERE id = $2")

	t.Run("success", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec(updateQuery).
			WithArgs("https://meet.example.com/abc", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetMeetLink(context.Background(), 42, "https://meet.example.com/abc")
		assert.NoError(t, err)
	})

	t.Run("missing session", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec(updateQuery).
			WithArgs("https://meet.example.com/abc", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetMeetLink(context.Background(), 99, "https://meet.example.com/abc")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestRepository_Cancel(t *testing.T) {
	cancelQuery := regexp.QuoteMeta(
		"UPDATE sessions SET status = $1, cancellation_reason = $2, cancelled_at = NOW(), updated_at = NOW() WHERE id = $3")

	t.Run("success", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec(cancelQuery).
			WithArgs(domain.StatusCancelled, "пациент попросил перенести", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Cancel(context.Background(), 42, "пациент попросил перенести")
		assert.NoError(t, err)
	})

	t.Run("missing session", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec(cancelQuery).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Cancel(context.Background(), 99, "")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
