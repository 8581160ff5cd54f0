package update_calendar

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/calendars/models"
)

type CalendarsService interface {
	Update(ctx context.Context, calendarID int64, req *models.UpdateCalendarRequest) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
