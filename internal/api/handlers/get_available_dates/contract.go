package get_available_dates

import (
	"context"
	"time"
)

type SlotService interface {
	WaitReady(ctx context.Context) error
	AvailableDates(ctx context.Context, category string) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
