package delete_calendar

import (
	"context"
)

type CalendarsService interface {
	Delete(ctx context.Context, calendarID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
