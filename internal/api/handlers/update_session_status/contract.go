package update_session_status

import "context"

type SessionService interface {
	UpdateStatus(ctx context.Context, sessionID int64, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
