package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/NC-SessionService/pkg/types"
)

type SlotService interface {
	WaitReady(ctx context.Context) error
	SlotsForDate(ctx context.Context, date time.Time, category string) ([]types.TimeString, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
