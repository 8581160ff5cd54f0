package list_calendars

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/calendars/models"
)

type CalendarsService interface {
	ListByUser(ctx context.Context, userID int64) (*models.CalendarListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
