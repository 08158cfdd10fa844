package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NC-SessionService/internal/domain"
	sessionRepo "github.com/m04kA/NC-SessionService/internal/infra/storage/session"
	"github.com/m04kA/NC-SessionService/internal/service/sessions/models"
	"github.com/m04kA/NC-SessionService/pkg/ptr"
)

type fakeRepo struct {
	session       *domain.Session
	sessions      []*domain.Session
	getErr        error
	cancelErr     error
	cancelCalls   int
	cancelReason  string
	updatedStatus domain.SessionStatus
	updateErr     error
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.session, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, _ int64, _ *domain.SessionStatus) ([]*domain.Session, error) {
	return f.sessions, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ int64, status domain.SessionStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedStatus = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelCalls++
	f.cancelReason = reason
	return f.cancelErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduledSession() *domain.Session {
	return &domain.Session{
		ID:              42,
		UserID:          7,
		Title:           "Консультация",
		DurationMinutes: 30,
		Date:            time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		Category:        domain.CategorySession,
		Status:          domain.StatusScheduled,
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := NewService(&fakeRepo{session: scheduledSession()}, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "2026-09-14", resp.Date)
		assert.Equal(t, "10:00", resp.StartTime)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&fakeRepo{getErr: sessionRepo.ErrSessionNotFound}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestService_GetUserSessions(t *testing.T) {
	t.Run("returns history", func(t *testing.T) {
		svc := NewService(&fakeRepo{sessions: []*domain.Session{scheduledSession()}}, nopLogger{})

		resp, err := svc.GetUserSessions(context.Background(), &models.GetUserSessionsRequest{UserID: 7})
		require.NoError(t, err)
		assert.Len(t, resp.Sessions, 1)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nopLogger{})

		_, err := svc.GetUserSessions(context.Background(), &models.GetUserSessionsRequest{
			UserID: 7,
			Status: ptr.Ptr("bogus"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("scheduled session is cancelled", func(t *testing.T) {
		repo := &fakeRepo{session: scheduledSession()}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelSessionRequest{
			CancellationReason: "пациент попросил перенести",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.cancelCalls)
		assert.Equal(t, "пациент попросил перенести", repo.cancelReason)
	})

	t.Run("completed session cannot be cancelled", func(t *testing.T) {
		session := scheduledSession()
		session.Status = domain.StatusCompleted
		repo := &fakeRepo{session: session}
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelSessionRequest{})
		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.Zero(t, repo.cancelCalls)
	})

	t.Run("missing session", func(t *testing.T) {
		svc := NewService(&fakeRepo{getErr: sessionRepo.ErrSessionNotFound}, nopLogger{})

		err := svc.Cancel(context.Background(), 99, &models.CancelSessionRequest{})
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("mark completed", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 42, "completed")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
	})

	t.Run("cancelled goes through cancel path only", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 42, "cancelled")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 42, "bogus")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
