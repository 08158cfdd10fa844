package create_session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NC-SessionService/internal/domain"
	createSession "github.com/m04kA/NC-SessionService/internal/usecase/create_session"
	"github.com/m04kA/NC-SessionService/pkg/ptr"
)

type fakeUseCase struct {
	resp *createSession.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createSession.Request) (*createSession.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validBody() string {
	return `{"userId":7,"title":"Консультация","durationMinutes":30,"date":"2026-09-14","startTime":"10:00"}`
}

func doRequest(uc CreateSessionUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createSession.Response{
		ID:              42,
		UserID:          7,
		Title:           "Консультация",
		DurationMinutes: 30,
		Date:            time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		Category:        domain.CategorySession,
		Status:          string(domain.StatusScheduled),
		MeetLink:        ptr.Ptr("https://meet.example.com/abc"),
		LinkGenerated:   true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}}

	rec := doRequest(uc, validBody())
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-09-14", resp.Date)
	assert.True(t, resp.LinkGenerated)
	require.NotNil(t, resp.MeetLink)
	assert.Equal(t, "https://meet.example.com/abc", *resp.MeetLink)
}

func TestHandle_PartialSuccessWithoutLink(t *testing.T) {
	uc := &fakeUseCase{resp: &createSession.Response{
		ID:        42,
		UserID:    7,
		Date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		Status:    string(domain.StatusScheduled),
	}}

	// Сессия создана, ссылки нет - для клиента это успех
	rec := doRequest(uc, validBody())
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.LinkGenerated)
	assert.Nil(t, resp.MeetLink)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: createSession.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "user not found", err: createSession.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "past date", err: createSession.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "slot taken", err: createSession.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "internal", err: createSession.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(&fakeUseCase{err: tt.err}, validBody())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadPayload(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		rec := doRequest(&fakeUseCase{}, "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date format", func(t *testing.T) {
		rec := doRequest(&fakeUseCase{}, `{"userId":7,"title":"x","date":"14.09.2026","startTime":"10:00"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad time format", func(t *testing.T) {
		rec := doRequest(&fakeUseCase{}, `{"userId":7,"title":"x","date":"2026-09-14","startTime":"10am"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
