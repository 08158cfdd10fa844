package create_session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NC-SessionService/internal/domain"
	sessionRepo "github.com/m04kA/NC-SessionService/internal/infra/storage/session"
	userRepo "github.com/m04kA/NC-SessionService/internal/infra/storage/user"
	"github.com/m04kA/NC-SessionService/pkg/types"
)

type fakeSessionRepo struct {
	createErr    error
	created      *domain.Session
	createCalls  int
	setLinkErr   error
	setLinkCalls int
	setLinkID    int64
	setLinkValue string
}

func (f *fakeSessionRepo) Create(_ context.Context, session *domain.Session) (*domain.Session, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *session
	created.ID = 42
	created.CreatedAt = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeSessionRepo) SetMeetLink(_ context.Context, id int64, meetLink string) error {
	f.setLinkCalls++
	f.setLinkID = id
	f.setLinkValue = meetLink
	return f.setLinkErr
}

type fakeUserRepo struct {
	user  *domain.User
	err   error
	calls int
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeSlotManager struct {
	free     bool
	err      error
	calls    int
	readyErr error
}

func (f *fakeSlotManager) WaitReady(_ context.Context) error {
	return f.readyErr
}

func (f *fakeSlotManager) IsSlotFree(_ context.Context, _ time.Time, _ types.TimeString, _ string) (bool, error) {
	f.calls++
	return f.free, f.err
}

type fakeMeetClient struct {
	link  string
	err   error
	calls int
	email string
	start time.Time
	end   time.Time
}

func (f *fakeMeetClient) CreateMeeting(_ context.Context, patientEmail string, start, end time.Time) (string, error) {
	f.calls++
	f.email = patientEmail
	f.start = start
	f.end = end
	if f.err != nil {
		return "", f.err
	}
	return f.link, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	sessions *fakeSessionRepo
	users    *fakeUserRepo
	slots    *fakeSlotManager
	meet     *fakeMeetClient
	tx       *fakeTxManager
}

func newFixture() *fixture {
	f := &fixture{
		sessions: &fakeSessionRepo{},
		users: &fakeUserRepo{user: &domain.User{
			ID:    7,
			Email: "patient@example.com",
		}},
		slots: &fakeSlotManager{free: true},
		meet:  &fakeMeetClient{link: "https://meet.example.com/abc-defg-hij"},
		tx:    &fakeTxManager{},
	}

	f.uc = NewUseCase(f.sessions, f.users, f.slots, f.meet, f.tx, nopLogger{})
	f.uc.timeProvider = &fakeTimeProvider{
		now: time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC),
	}
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:          7,
		Title:           "Первичная консультация",
		DurationMinutes: 30,
		Date:            time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local),
		StartTime:       "10:00",
		Category:        domain.CategorySession,
	}
}

func TestExecute_ValidationFailsWithoutIO(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero user id", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "empty title", mutate: func(r *Request) { r.Title = "   " }},
		{name: "zero duration", mutate: func(r *Request) { r.DurationMinutes = 0 }},
		{name: "negative duration", mutate: func(r *Request) { r.DurationMinutes = -30 }},
		{name: "excessive duration", mutate: func(r *Request) { r.DurationMinutes = 600 }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed time", mutate: func(r *Request) { r.StartTime = "25:99" }},
		{name: "empty category", mutate: func(r *Request) { r.Category = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)

			// Ни одного обращения к хранилищу и внешним сервисам
			assert.Zero(t, f.users.calls)
			assert.Zero(t, f.slots.calls)
			assert.Zero(t, f.sessions.createCalls)
			assert.Zero(t, f.meet.calls)
			assert.Zero(t, f.tx.calls)
		})
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = time.Date(2026, 9, 9, 0, 0, 0, 0, time.Local)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Zero(t, f.sessions.createCalls)
}

func TestExecute_UserNotFound(t *testing.T) {
	f := newFixture()
	f.users.err = userRepo.ErrUserNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Zero(t, f.sessions.createCalls)
	assert.Zero(t, f.meet.calls)
}

func TestExecute_SlotNotFree(t *testing.T) {
	f := newFixture()
	f.slots.free = false

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Запись не создается, встреча не запрашивается
	assert.Zero(t, f.sessions.createCalls)
	assert.Zero(t, f.meet.calls)
}

func TestExecute_ConcurrentInsertLosesRace(t *testing.T) {
	f := newFixture()
	// Пре-проверка прошла, но вставка уперлась в уникальный индекс
	f.sessions.createErr = sessionRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.meet.calls)
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.True(t, resp.LinkGenerated)
	require.NotNil(t, resp.MeetLink)
	assert.Equal(t, "https://meet.example.com/abc-defg-hij", *resp.MeetLink)

	// Ссылка привязана именно к созданной сессии и именно та, что вернул сервис
	assert.Equal(t, 1, f.sessions.setLinkCalls)
	assert.Equal(t, int64(42), f.sessions.setLinkID)
	assert.Equal(t, "https://meet.example.com/abc-defg-hij", f.sessions.setLinkValue)

	// Встреча запрошена для email пациента с корректным интервалом
	assert.Equal(t, "patient@example.com", f.meet.email)
	assert.Equal(t, 30*time.Minute, f.meet.end.Sub(f.meet.start))
	assert.Equal(t, 1, f.tx.calls)
}

func TestExecute_MeetServiceFailureIsPartialSuccess(t *testing.T) {
	f := newFixture()
	f.meet.err = errors.New("meet service unavailable")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Сессия создана и не откатывается, но без ссылки
	assert.Equal(t, int64(42), resp.ID)
	assert.False(t, resp.LinkGenerated)
	assert.Nil(t, resp.MeetLink)
	assert.Equal(t, 1, f.sessions.createCalls)
	assert.Zero(t, f.sessions.setLinkCalls)
}

func TestExecute_MeetLinkPatchFailureIsPartialSuccess(t *testing.T) {
	f := newFixture()
	f.sessions.setLinkErr = errors.New("db error")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.LinkGenerated)
	assert.Nil(t, resp.MeetLink)
	assert.Equal(t, 1, f.sessions.createCalls)
}

func TestExecute_SlotManagerNotReady(t *testing.T) {
	f := newFixture()
	f.slots.readyErr = errors.New("not initialized")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, f.sessions.createCalls)
}
